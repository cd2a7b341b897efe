// Package registry holds the fixed in-memory catalog of agent
// definitions and their configuration sections. The catalog is built
// once at startup and immutable thereafter.
package registry

import (
	"fmt"

	"github.com/bremenlabs/agentops/internal/schema"
)

// Section is an independently saved group of configuration fields,
// keyed by the identifier used to persist its value bag.
type Section struct {
	Key         string         `json:"key"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Fields      []schema.Field `json:"fields"`
}

// Registry is the fixed catalog of agent definitions. Lookup misses are
// reported through a boolean result, never a panic; callers degrade to
// treating the agent as unavailable.
type Registry struct {
	agents []schema.Definition
	byID   map[string]int
	shared []schema.Field
}

// New builds the default catalog. It fails if any definition violates
// the schema invariants.
func New() (*Registry, error) {
	return build([]schema.Definition{businessIntel, careerScout, linkedinResearcher}, sharedFields)
}

func build(agents []schema.Definition, shared []schema.Field) (*Registry, error) {
	byID := make(map[string]int, len(agents))
	for i, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, ok := byID[a.ID]; ok {
			return nil, fmt.Errorf("duplicate agent id: %s", a.ID)
		}
		byID[a.ID] = i
	}
	if err := schema.ValidateFields(shared); err != nil {
		return nil, fmt.Errorf("shared section: %w", err)
	}

	return &Registry{
		agents: agents,
		byID:   byID,
		shared: shared,
	}, nil
}

// Get returns the agent with the given id. The second result is false
// when no such agent exists.
func (r *Registry) Get(id string) (schema.Definition, bool) {
	i, ok := r.byID[id]
	if !ok {
		return schema.Definition{}, false
	}
	return r.agents[i], true
}

// All returns every agent definition in catalog order.
func (r *Registry) All() []schema.Definition {
	out := make([]schema.Definition, len(r.agents))
	copy(out, r.agents)
	return out
}

// ByCategory returns the agents in the given category, preserving
// catalog order.
func (r *Registry) ByCategory(cat schema.Category) []schema.Definition {
	var out []schema.Definition
	for _, a := range r.agents {
		if a.Category == cat {
			out = append(out, a)
		}
	}
	return out
}

// SharedFields returns the field list of the cross-agent section.
func (r *Registry) SharedFields() []schema.Field {
	out := make([]schema.Field, len(r.shared))
	copy(out, r.shared)
	return out
}

// Sections returns every configuration section: the shared cross-agent
// section first, then one section per agent in catalog order.
func (r *Registry) Sections() []Section {
	sections := make([]Section, 0, len(r.agents)+1)
	sections = append(sections, Section{
		Key:         SharedKey,
		Title:       "Bremen Protocol",
		Description: "Shared settings: Deep Work, Mobility, Guardrails",
		Fields:      r.SharedFields(),
	})
	for _, a := range r.agents {
		sections = append(sections, Section{
			Key:         a.ID,
			Title:       a.Name,
			Description: a.Description,
			Fields:      a.Fields,
		})
	}
	return sections
}

// SectionFields returns the field list for the section identified by
// key, which is either the shared key or an agent id.
func (r *Registry) SectionFields(key string) ([]schema.Field, bool) {
	if key == SharedKey {
		return r.SharedFields(), true
	}
	a, ok := r.Get(key)
	if !ok {
		return nil, false
	}
	return a.Fields, true
}
