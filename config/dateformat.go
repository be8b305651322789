package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidDateFormat is returned when a date/time pattern cannot be
// compiled.
var ErrInvalidDateFormat = errors.New("invalid date/time format")

type dateField struct {
	letter byte
	width  int
	text   string // literal text when letter == 0
}

// DateFormat is a compiled SimpleDateFormat-style pattern such as
// "yyyy-MM-dd HH:mm:ss.SSS Z". Text between single quotes is literal and
// two single quotes in a row produce one. A DateFormat is immutable and
// safe for concurrent use.
type DateFormat struct {
	pattern string
	fields  []dateField
}

const supportedLetters = "GyYMLwdDEuaHkKhmsSzZX"

// ParseDateFormat compiles pattern. Unquoted ASCII letters other than
// G y Y M L w d D E u a H k K h m s S z Z X, or an unterminated quote,
// yield ErrInvalidDateFormat.
func ParseDateFormat(pattern string) (*DateFormat, error) {
	f := &DateFormat{pattern: pattern}
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			f.fields = append(f.fields, dateField{text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			i++
			for {
				if i >= len(pattern) {
					return nil, errors.Wrapf(ErrInvalidDateFormat, "unterminated quote in %q", pattern)
				}
				if pattern[i] == '\'' {
					if i+1 < len(pattern) && pattern[i+1] == '\'' {
						literal.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				literal.WriteByte(pattern[i])
				i++
			}
		case isASCIILetter(c):
			if strings.IndexByte(supportedLetters, c) < 0 {
				return nil, errors.Wrapf(ErrInvalidDateFormat, "illegal pattern character %q in %q", c, pattern)
			}
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			flush()
			f.fields = append(f.fields, dateField{letter: c, width: j - i})
			i = j
		default:
			literal.WriteByte(c)
			i++
		}
	}
	flush()

	return f, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Pattern returns the source pattern
func (f *DateFormat) Pattern() string {
	return f.pattern
}

// Format renders t
func (f *DateFormat) Format(t time.Time) string {
	return string(f.AppendFormat(make([]byte, 0, 32), t))
}

// AppendFormat appends the rendering of t to dst
func (f *DateFormat) AppendFormat(dst []byte, t time.Time) []byte {
	for _, fld := range f.fields {
		if fld.letter == 0 {
			dst = append(dst, fld.text...)
			continue
		}
		dst = fld.append(dst, t)
	}
	return dst
}

func (fld dateField) append(dst []byte, t time.Time) []byte {
	w := fld.width
	switch fld.letter {
	case 'G':
		if t.Year() <= 0 {
			return append(dst, "BC"...)
		}
		return append(dst, "AD"...)
	case 'y':
		return appendYear(dst, t.Year(), w)
	case 'Y':
		year, _ := t.ISOWeek()
		return appendYear(dst, year, w)
	case 'M', 'L':
		switch {
		case w >= 4:
			return append(dst, t.Month().String()...)
		case w == 3:
			return append(dst, t.Month().String()[:3]...)
		default:
			return appendPadded(dst, int(t.Month()), w)
		}
	case 'w':
		_, week := t.ISOWeek()
		return appendPadded(dst, week, w)
	case 'd':
		return appendPadded(dst, t.Day(), w)
	case 'D':
		return appendPadded(dst, t.YearDay(), w)
	case 'E':
		if w >= 4 {
			return append(dst, t.Weekday().String()...)
		}
		return append(dst, t.Weekday().String()[:3]...)
	case 'u':
		day := int(t.Weekday())
		if day == 0 {
			day = 7
		}
		return appendPadded(dst, day, w)
	case 'a':
		if t.Hour() < 12 {
			return append(dst, "AM"...)
		}
		return append(dst, "PM"...)
	case 'H':
		return appendPadded(dst, t.Hour(), w)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}
		return appendPadded(dst, h, w)
	case 'K':
		return appendPadded(dst, t.Hour()%12, w)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return appendPadded(dst, h, w)
	case 'm':
		return appendPadded(dst, t.Minute(), w)
	case 's':
		return appendPadded(dst, t.Second(), w)
	case 'S':
		return appendPadded(dst, t.Nanosecond()/int(time.Millisecond), w)
	case 'z':
		return t.AppendFormat(dst, "MST")
	case 'Z':
		return t.AppendFormat(dst, "-0700")
	case 'X':
		switch w {
		case 1:
			return t.AppendFormat(dst, "Z07")
		case 2:
			return t.AppendFormat(dst, "Z0700")
		default:
			return t.AppendFormat(dst, "Z07:00")
		}
	}
	return dst
}

func appendYear(dst []byte, year, width int) []byte {
	if width == 2 {
		return appendPadded(dst, year%100, 2)
	}
	return appendPadded(dst, year, width)
}

func appendPadded(dst []byte, v, width int) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	var buf [20]byte
	digits := strconv.AppendInt(buf[:0], int64(v), 10)
	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}
