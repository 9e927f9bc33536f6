package adapter

import (
	"context"

	"github.com/centavo/backend/internal/domain/finance"
)

// SnapshotLoader produces a fresh, immutable ledger snapshot from the
// persistence layer: a full scan of the four collections, validated at the
// boundary. Every aggregation call receives its own snapshot value; the
// engine itself never touches the store.
type SnapshotLoader interface {
	// Load reads all four collections and builds a Snapshot with its indexes.
	// Rows that fail validation surface as MalformedRecordError.
	Load(ctx context.Context) (*finance.Snapshot, error)
}
