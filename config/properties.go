package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the properties resource looked up when no other file
// is configured.
const DefaultFile = "lambda-logger.properties"

// Properties is an immutable key-value snapshot of a configuration
// resource. Nested YAML and TOML documents are flattened to dotted keys.
type Properties map[string]string

// Get returns the value stored under key
func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Keys returns the keys in sorted order
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadFile reads a configuration file. The format follows the
// extension: .yaml/.yml, .toml, anything else is a Java-style
// .properties file. A missing file yields an error matching
// fs.ErrNotExist.
func LoadFile(path string) (Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError(path, "load", err)
	}
	props, err := Parse(data, Format(path))
	if err != nil {
		return nil, NewError(path, "parse", err)
	}
	return props, nil
}

// IsNotExist reports whether err means the configuration file is absent
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// FileFormat is the syntax of a configuration resource
type FileFormat int

const (
	PropertiesFormat FileFormat = iota
	YAMLFormat
	TOMLFormat
)

// Format infers the file format from the path extension
func Format(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormat
	case ".toml":
		return TOMLFormat
	default:
		return PropertiesFormat
	}
}

// Parse decodes data in the given format
func Parse(data []byte, format FileFormat) (Properties, error) {
	switch format {
	case YAMLFormat:
		var doc map[string]interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "yaml")
		}
		return flatten(doc), nil
	case TOMLFormat:
		var doc map[string]interface{}
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "toml")
		}
		return flatten(doc), nil
	default:
		loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
		p, err := loader.LoadBytes(data)
		if err != nil {
			return nil, errors.Wrap(err, "properties")
		}
		return Properties(p.Map()), nil
	}
}

func flatten(doc map[string]interface{}) Properties {
	out := make(Properties)
	flattenInto(out, "", doc)
	return out
}

func flattenInto(out Properties, prefix string, value interface{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		for k, child := range v {
			flattenInto(out, joinKey(prefix, k), child)
		}
	case map[interface{}]interface{}:
		for k, child := range v {
			flattenInto(out, joinKey(prefix, cast.ToString(k)), child)
		}
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, cast.ToString(item))
		}
		out[prefix] = strings.Join(parts, ",")
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = cast.ToString(v)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
