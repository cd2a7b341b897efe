// Package metrics provides read access to the daily business metrics
// series, with a clearly flagged sample fallback for cold-start
// environments where the store is unreachable or empty.
package metrics

// Metric is one day of business metrics.
type Metric struct {
	Date    string  `json:"date"`
	Users   int     `json:"users"`
	Revenue float64 `json:"revenue"`
	Spend   float64 `json:"spend"`
}

// Source identifies where a series came from.
type Source string

const (
	// SourceLive marks data read from the store.
	SourceLive Source = "live"
	// SourceSample marks generated fallback data, never to be confused
	// with live metrics.
	SourceSample Source = "sample"
)

// Series is an ordered run of daily metrics, oldest first, tagged with
// its origin.
type Series struct {
	Points []Metric `json:"points"`
	Source Source   `json:"source"`
}
