package metrics

import "context"

// System defines the interface for business metric reads.
type System interface {
	// Series returns up to limit daily metrics oldest first. When the
	// store is unreachable or holds no rows, the returned series comes
	// from the sample source and is flagged SourceSample.
	Series(ctx context.Context, limit int) (*Series, error)
}
