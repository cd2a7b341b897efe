// Package forms turns an ordered configuration field list into an
// editable value bag and reduces edits back into it. The whole bag is
// the unit of persistence; per-field saves do not exist.
package forms

import (
	"errors"
	"fmt"

	"github.com/bremenlabs/agentops/internal/schema"
)

// Bag maps field keys to their current values for one configuration
// section.
type Bag map[string]any

// NewBag builds the initial bag for a field list: each key takes the
// field's declared default, or a type-consistent empty value without one.
func NewBag(fields []schema.Field) Bag {
	bag := make(Bag, len(fields))
	for _, f := range fields {
		bag[f.Key] = f.Default()
	}
	return bag
}

// Form owns the ordered field list and value bag for one section. A
// form instance is the sole mutator of its bag.
type Form struct {
	fields []schema.Field
	byKey  map[string]schema.Field
	bag    Bag
}

// New creates a form over the given field list with a defaulted bag.
func New(fields []schema.Field) (*Form, error) {
	if err := schema.ValidateFields(fields); err != nil {
		return nil, err
	}

	byKey := make(map[string]schema.Field, len(fields))
	for _, f := range fields {
		byKey[f.Key] = f
	}

	return &Form{
		fields: fields,
		byKey:  byKey,
		bag:    NewBag(fields),
	}, nil
}

// Fields returns the ordered field list.
func (f *Form) Fields() []schema.Field {
	out := make([]schema.Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Values returns a copy of the current bag.
func (f *Form) Values() Bag {
	out := make(Bag, len(f.bag))
	for k, v := range f.bag {
		out[k] = v
	}
	return out
}

// Apply sets the value for key, dispatching on the field's type to the
// matching edit operation.
func (f *Form) Apply(key string, raw any) error {
	field, ok := f.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}

	switch field.Type {
	case schema.FieldToggle:
		v, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("%w %s: expected bool, got %T", ErrInvalidValue, key, raw)
		}
		f.bag[key] = v

	case schema.FieldSlider:
		v, ok := toNumber(raw)
		if !ok {
			return fmt.Errorf("%w %s: expected number, got %T", ErrInvalidValue, key, raw)
		}
		f.bag[key] = clamp(v, field.Min, field.Max)

	case schema.FieldText, schema.FieldTextarea, schema.FieldTimeRange:
		v, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%w %s: expected string, got %T", ErrInvalidValue, key, raw)
		}
		f.bag[key] = v

	case schema.FieldSelect:
		v, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%w %s: expected string, got %T", ErrInvalidValue, key, raw)
		}
		if !field.HasOption(v) {
			return fmt.Errorf("%w %s: %q is not an option", ErrInvalidValue, key, v)
		}
		f.bag[key] = v

	case schema.FieldMultiSelect:
		values, ok := toStrings(raw)
		if !ok {
			return fmt.Errorf("%w %s: expected string list, got %T", ErrInvalidValue, key, raw)
		}
		selection := make([]string, 0, len(values))
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			if !field.HasOption(v) {
				return fmt.Errorf("%w %s: %q is not an option", ErrInvalidValue, key, v)
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			selection = append(selection, v)
		}
		f.bag[key] = selection

	case schema.FieldTags:
		values, ok := toStrings(raw)
		if !ok {
			return fmt.Errorf("%w %s: expected string list, got %T", ErrInvalidValue, key, raw)
		}
		f.bag[key] = values

	default:
		return fmt.Errorf("%w %s: unhandled field type %s", ErrInvalidValue, key, field.Type)
	}

	return nil
}

// ApplyAll applies every entry of values to the bag, failing on the
// first invalid entry. Callers that must not persist a partially valid
// bag use this; the bag may hold already-applied entries after an error.
func (f *Form) ApplyAll(values map[string]any) error {
	for k, v := range values {
		if err := f.Apply(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Overlay applies every entry of values to the bag independently,
// skipping entries that fail validation. Every valid entry is applied
// regardless of iteration order; the skipped entries are reported as one
// joined error.
func (f *Form) Overlay(values map[string]any) error {
	var errs []error
	for k, v := range values {
		if err := f.Apply(k, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ToggleOption adds value to a multi-select field's selection if absent,
// or removes it if present. Selection order of the remaining values is
// preserved.
func (f *Form) ToggleOption(key, value string) error {
	field, ok := f.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if field.Type != schema.FieldMultiSelect {
		return fmt.Errorf("%w %s: toggle requires a multi-select field", ErrInvalidValue, key)
	}
	if !field.HasOption(value) {
		return fmt.Errorf("%w %s: %q is not an option", ErrInvalidValue, key, value)
	}

	current, _ := toStrings(f.bag[key])
	next := make([]string, 0, len(current)+1)
	removed := false
	for _, v := range current {
		if v == value {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, value)
	}
	f.bag[key] = next
	return nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toStrings(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case nil:
		return []string{}, true
	default:
		return nil, false
	}
}
