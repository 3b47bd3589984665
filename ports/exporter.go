package ports

import "cytostats/domain/stats"

// Exporter writes an assembled result table to a file. Implementations
// append their default extension when the path has none and return the
// final path written.
type Exporter interface {
	Export(path string, t *stats.Table) (string, error)
}
