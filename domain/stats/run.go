package stats

import (
	"time"

	"cytostats/domain/core"
)

// Run captures one assembled pipeline result for persistence and reporting.
type Run struct {
	ID        core.ID   `json:"id"`
	Statistic Kind      `json:"statistic"`
	Long      bool      `json:"long"`
	Table     *Table    `json:"table"`
	Warnings  []Warning `json:"warnings,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRun freezes a result set into a run record in the requested layout.
func NewRun(rs *ResultSet, long bool) *Run {
	return &Run{
		ID:        core.NewID(),
		Statistic: rs.Kind,
		Long:      long,
		Table:     rs.Table(long),
		Warnings:  append([]Warning(nil), rs.Warnings...),
		CreatedAt: time.Now().UTC(),
	}
}
