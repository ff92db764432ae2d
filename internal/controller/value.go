package controller

import "slices"

// Trigger names what committed a display value.
type Trigger string

const (
	TriggerConfirm Trigger = "confirm"
)

// DisplayChange describes a commit of the applied display columns.
type DisplayChange struct {
	Trigger Trigger
}

// DisplayChangeFunc receives proposed or committed display columns.
type DisplayChangeFunc func(value []string, change DisplayChange)

// Value holds the applied display columns. Whether it owns the value or defers
// to the host is decided once, when it is created.
type Value struct {
	controlled bool
	external   []string
	internal   []string
	onChange   DisplayChangeFunc
}

// NewValue resolves the source of truth. The value is controlled only when
// both external and onChange are non-nil; otherwise it owns a copy of
// fallback.
func NewValue(external []string, fallback []string, onChange DisplayChangeFunc) *Value {
	if external != nil && onChange != nil {
		return &Value{
			controlled: true,
			external:   slices.Clone(external),
			onChange:   onChange,
		}
	}
	return &Value{
		internal: slices.Clone(fallback),
		onChange: onChange,
	}
}

// Controlled reports whether the host owns the value.
func (v *Value) Controlled() bool {
	return v.controlled
}

// Get returns a copy of the applied columns.
func (v *Value) Get() []string {
	if v.controlled {
		return slices.Clone(v.external)
	}
	return slices.Clone(v.internal)
}

// Set commits value. A controlled value only proposes it to the host, which
// answers through Sync.
func (v *Value) Set(value []string, change DisplayChange) {
	value = slices.Clone(value)
	if !v.controlled {
		v.internal = value
	}
	if v.onChange != nil {
		v.onChange(slices.Clone(value), change)
	}
}

// Sync records a new host value. It reports whether the applied columns
// changed. Uncontrolled values ignore it.
func (v *Value) Sync(external []string) bool {
	if !v.controlled {
		return false
	}
	if slices.Equal(v.external, external) {
		return false
	}
	v.external = slices.Clone(external)
	return true
}
