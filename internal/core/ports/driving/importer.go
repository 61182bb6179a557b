package driving

import (
	"context"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

// ImportService runs the administrative CSV import pipeline.
type ImportService interface {
	// ImportCSV maps, validates and persists one CSV file into a
	// collection. The collection is created on first import and its
	// entries replaced on re-import, in a single transaction.
	// Malformed rows are skipped and counted, never fatal; a missing
	// file is the only fatal condition.
	ImportCSV(ctx context.Context, req domain.ImportRequest) (*domain.ImportResult, error)
}
