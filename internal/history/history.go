// Package history keeps summaries of finished runs so they can be listed and
// compared later.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"lifesim/internal/sim"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Record is one finished run.
type Record struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Age       int         `json:"age"`
	EndingID  string      `json:"ending_id"`
	Seed      int64       `json:"seed,omitempty"`
	Summary   sim.Summary `json:"summary"`
}

// NewRecord stamps a summary with a fresh id. The summary is expected to
// carry its log already.
func NewRecord(sum sim.Summary, age int, seed int64, now time.Time) Record {
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
		Age:       age,
		EndingID:  sum.Ending.ID,
		Seed:      seed,
		Summary:   sum,
	}
}

// Store persists records. List returns the newest records first; a limit of
// zero or less means all of them.
type Store interface {
	Add(ctx context.Context, r Record) error
	List(ctx context.Context, limit int) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
