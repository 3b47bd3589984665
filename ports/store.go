package ports

import (
	"context"

	"cytostats/domain/stats"
)

// ResultStore persists assembled runs for later retrieval.
type ResultStore interface {
	SaveRun(ctx context.Context, run *stats.Run) error
}
