// Package schema defines the declarative shape of agent definitions and
// their configuration fields. The types carry no behavior beyond
// validation and default resolution.
package schema

import (
	"fmt"
)

// FieldType tags a configuration field with its editor and value shape.
type FieldType string

const (
	FieldToggle      FieldType = "toggle"
	FieldSlider      FieldType = "slider"
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldTimeRange   FieldType = "time-range"
	FieldMultiSelect FieldType = "multi-select"
	FieldSelect      FieldType = "select"
	FieldTags        FieldType = "tags"
)

// Validate checks that the field type is one of the supported values.
func (t FieldType) Validate() error {
	switch t {
	case FieldToggle, FieldSlider, FieldText, FieldTextarea, FieldTimeRange,
		FieldMultiSelect, FieldSelect, FieldTags:
		return nil
	default:
		return fmt.Errorf("invalid field type: %s", t)
	}
}

// ZeroValue returns the type-consistent empty value for a field of this
// type that has no declared default.
func (t FieldType) ZeroValue() any {
	switch t {
	case FieldToggle:
		return false
	case FieldSlider:
		return float64(0)
	case FieldMultiSelect, FieldTags:
		return []string{}
	default:
		return ""
	}
}

// Option is a selectable value with a display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes a single configuration field within a section schema.
type Field struct {
	Key          string    `json:"key"`
	Label        string    `json:"label"`
	Type         FieldType `json:"type"`
	Description  string    `json:"description,omitempty"`
	DefaultValue any       `json:"default_value,omitempty"`
	Options      []Option  `json:"options,omitempty"`
	Min          float64   `json:"min,omitempty"`
	Max          float64   `json:"max,omitempty"`
	Step         float64   `json:"step,omitempty"`
}

// Default returns the field's declared default value, falling back to a
// type-consistent empty value. Sliders without a default fall back to Min.
func (f Field) Default() any {
	if f.DefaultValue != nil {
		return f.DefaultValue
	}
	if f.Type == FieldSlider {
		return f.Min
	}
	return f.Type.ZeroValue()
}

// HasOption reports whether value is one of the field's declared options.
func (f Field) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Validate checks the field's structural invariants.
func (f Field) Validate() error {
	if f.Key == "" {
		return fmt.Errorf("field key required")
	}
	if f.Label == "" {
		return fmt.Errorf("field %s: label required", f.Key)
	}
	if err := f.Type.Validate(); err != nil {
		return fmt.Errorf("field %s: %w", f.Key, err)
	}

	switch f.Type {
	case FieldSelect, FieldMultiSelect:
		if len(f.Options) == 0 {
			return fmt.Errorf("field %s: options required for %s", f.Key, f.Type)
		}
	case FieldSlider:
		if f.Min > f.Max {
			return fmt.Errorf("field %s: min %v exceeds max %v", f.Key, f.Min, f.Max)
		}
		if f.Step <= 0 {
			return fmt.Errorf("field %s: step must be positive", f.Key)
		}
	}
	return nil
}

// ValidateFields checks every field in the list and the uniqueness of
// field keys within it.
func ValidateFields(fields []Field) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return err
		}
		if _, ok := seen[f.Key]; ok {
			return fmt.Errorf("duplicate field key: %s", f.Key)
		}
		seen[f.Key] = struct{}{}
	}
	return nil
}
