package dataset

import "context"

// Source materializes the full availability table into a Snapshot.
// Implementations own filtering of malformed rows; the Snapshot they hand
// over is assumed clean and is never reloaded for the process lifetime.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}
