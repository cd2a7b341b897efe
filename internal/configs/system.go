package configs

import "context"

// System defines the interface for configuration section storage.
type System interface {
	// Find returns the stored section for key. A section that has never
	// been saved yields ErrNotFound, which callers treat as a normal
	// absent result rather than a failure.
	Find(ctx context.Context, key string) (*AgentConfig, error)

	// Upsert stores the entire value bag for key atomically, replacing
	// any previous value. Concurrent writers to the same key race with
	// last-write-wins semantics.
	Upsert(ctx context.Context, key string, value map[string]any) (*AgentConfig, error)

	// List returns every stored section ordered by key.
	List(ctx context.Context) ([]AgentConfig, error)
}
