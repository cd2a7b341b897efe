package schema

import "fmt"

// Category groups agents for dashboard display.
type Category string

const (
	CategoryBusiness  Category = "business"
	CategoryCareer    Category = "career"
	CategoryLifestyle Category = "lifestyle"
)

// Validate checks that the category is one of the supported values.
func (c Category) Validate() error {
	switch c {
	case CategoryBusiness, CategoryCareer, CategoryLifestyle:
		return nil
	default:
		return fmt.Errorf("invalid category: %s", c)
	}
}

// Route labels the flow an agent monitors, source to destination.
type Route struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// Definition describes one externally hosted automation agent: identity,
// display metadata, webhook routing reference, and configuration schema.
// Definitions are constructed once at startup and never mutated.
type Definition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	WebhookRef  string   `json:"webhook_ref"`
	Route       Route    `json:"route"`
	Fields      []Field  `json:"config_fields"`
}

// Validate checks the definition's structural invariants, including
// every configuration field.
func (d Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("agent id required")
	}
	if d.Name == "" {
		return fmt.Errorf("agent %s: name required", d.ID)
	}
	if err := d.Category.Validate(); err != nil {
		return fmt.Errorf("agent %s: %w", d.ID, err)
	}
	if d.WebhookRef == "" {
		return fmt.Errorf("agent %s: webhook ref required", d.ID)
	}
	if err := ValidateFields(d.Fields); err != nil {
		return fmt.Errorf("agent %s: %w", d.ID, err)
	}
	return nil
}
