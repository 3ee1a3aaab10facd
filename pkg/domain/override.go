package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Transform receives the configuration resolved so far for one server and
// returns a mapping to merge over it. Returning nil leaves the
// configuration unchanged.
type Transform func(config map[string]any) map[string]any

// Override adjusts the registry defaults of a single server. The zero value
// is a no-op. Overrides built from anything other than a transform function
// or a mapping are invalid and fail resolution for that server only.
type Override struct {
	fn      Transform
	invalid bool
}

// OverrideFunc builds an override from a transform function.
// A nil transform yields an invalid override.
func OverrideFunc(fn Transform) Override {
	if fn == nil {
		return InvalidOverride()
	}
	return Override{fn: fn}
}

// OverrideMap builds an override that merges the given mapping over the
// server defaults.
func OverrideMap(config map[string]any) Override {
	return Override{fn: func(map[string]any) map[string]any {
		return config
	}}
}

// InvalidOverride builds an override that fails resolution. Config loaders
// use it to carry a malformed per-server entry up to the point where the
// server is resolved, so one bad entry cannot fail the whole run.
func InvalidOverride() Override {
	return Override{invalid: true}
}

// apply runs the override against the configuration resolved so far and
// returns the mapping to merge over it. A panicking transform is reported
// as ErrOverrideFailed rather than unwinding the caller.
func (o Override) apply(config map[string]any) (patch map[string]any, err error) {
	if o.invalid {
		return nil, ErrInvalidOverride
	}
	if o.fn == nil {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(ErrOverrideFailed, "panic", fmt.Sprint(r))
		}
	}()
	return o.fn(config), nil
}
