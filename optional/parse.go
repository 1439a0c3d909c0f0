package optional

import (
	"reflect"

	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

type parseConfig struct {
	emptyAsNone bool
	ssa         []reflectutils.StringSetterArg
}

// ParseOpt adjusts how Parse interprets its input.
type ParseOpt func(*parseConfig)

// ParseEmptyAsNone makes Parse return an empty container for an
// empty input string instead of parsing it.
func ParseEmptyAsNone() ParseOpt {
	return func(c *parseConfig) {
		c.emptyAsNone = true
	}
}

// WithSplitOn sets the separator used when parsing into slices,
// arrays, and maps.
func WithSplitOn(s string) ParseOpt {
	return func(c *parseConfig) {
		if s != "" {
			c.ssa = append(c.ssa, reflectutils.WithSplitOn(s))
		}
	}
}

// Parse builds a present container by parsing string data into a T,
// using the same string-setting machinery that fills struct fields
// from environment variables.
func Parse[T any](s string, opts ...ParseOpt) (Value[T], error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if s == "" && cfg.emptyAsNone {
		return None[T](), nil
	}
	var out T
	t := reflect.TypeOf(&out).Elem()
	setter, err := reflectutils.MakeStringSetter(t, cfg.ssa...)
	if err != nil {
		return None[T](), errors.Wrapf(err, "parse optional %s", t)
	}
	err = setter(reflect.ValueOf(&out).Elem(), s)
	if err != nil {
		return None[T](), errors.Wrapf(err, "parse optional %s", t)
	}
	return Some(out), nil
}
