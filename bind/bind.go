package bind

import (
	"strings"

	"arg-binder/convert"
	"arg-binder/internal/match"
	"arg-binder/schema"
)

// DefaultMaxDistance is the edit-distance ceiling for key matching unless
// WithMaxDistance overrides it.
const DefaultMaxDistance = 2

// Options tune a single bind call.
type Options struct {
	// MaxDistance is the edit-distance ceiling for key resolution;
	// 0 restricts matching to exact (case-insensitive) keys.
	MaxDistance int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDistance sets the edit-distance ceiling for key matching.
func WithMaxDistance(n int) Option {
	return func(o *Options) { o.MaxDistance = n }
}

// Bind tokenizes args as key=value pairs and applies them onto a freshly
// created T. Tokens that are malformed, whose key resolves to no field
// within the ceiling, or whose value fails a fail-soft conversion are
// skipped, leaving the field at its prior (default) value. A scalar
// conversion error aborts the call; fields set before the error remain set
// on the returned object. Fields never mentioned keep their declared
// defaults.
func Bind[T any](s *schema.Schema[T], args []string, opts ...Option) (*T, error) {
	o := Options{MaxDistance: DefaultMaxDistance}
	for _, opt := range opts {
		opt(&o)
	}

	target := new(T)
	s.ApplyDefaults(target)

	names := s.Names()

	for _, arg := range args {
		key, value, ok := splitToken(arg)
		if !ok {
			continue
		}

		res, ok := match.Resolve(strings.ToLower(key), names, o.MaxDistance)
		if !ok {
			continue
		}

		field := s.Field(res.Index)

		v, ok, err := convert.Coerce(value, field.Type)
		if err != nil {
			return target, err
		}

		if !ok {
			continue
		}

		field.Apply(target, v)
	}

	return target, nil
}

// splitToken splits a raw argument on '=' discarding empty fragments. The
// token is well-formed only if exactly two non-empty fragments remain, so
// "=v", "k=", "noequals", and "a=b=c" are all rejected.
func splitToken(arg string) (key, value string, ok bool) {
	var parts []string

	for _, p := range strings.Split(arg, "=") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) != 2 {
		return "", "", false
	}

	return parts[0], parts[1], true
}
