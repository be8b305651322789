package core

import "context"

type mdcKey struct{}

// WithMDC returns a copy of ctx whose mapped diagnostic context has key
// set to value. The parent context's map is never modified.
func WithMDC(ctx context.Context, key, value string) context.Context {
	parent, _ := ctx.Value(mdcKey{}).(map[string]string)
	m := make(map[string]string, len(parent)+1)
	for k, v := range parent {
		m[k] = v
	}
	m[key] = value
	return context.WithValue(ctx, mdcKey{}, m)
}

// MDCValue returns the value stored under key, if any
func MDCValue(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}
	m, _ := ctx.Value(mdcKey{}).(map[string]string)
	v, ok := m[key]
	return v, ok
}

// MDC returns a copy of the whole mapped diagnostic context of ctx
func MDC(ctx context.Context) map[string]string {
	m, _ := ctx.Value(mdcKey{}).(map[string]string)
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
