package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("run not found")

type Run struct {
	ID           uuid.UUID  `db:"id"            json:"id"`
	Status       Status     `db:"status"        json:"status"`
	StartedAt    time.Time  `db:"started_at"    json:"started_at"`
	FinishedAt   *time.Time `db:"finished_at"   json:"finished_at,omitempty"`
	ObjectsCount int        `db:"objects_count" json:"objects_count"`
	JobsCount    int        `db:"jobs_count"    json:"jobs_count"`
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
}

// Report collects everything one run produced.
type Report struct {
	Run      *Run
	Objects  []string
	Jobs     []*LoadJob
	Outcomes []Outcome
}

func (r *Report) StageOutcomes(stage Stage) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Stage == stage {
			out = append(out, o)
		}
	}

	return out
}

func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			out = append(out, o)
		}
	}

	return out
}
