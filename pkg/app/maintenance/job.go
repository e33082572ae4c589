package maintenance

import (
	"context"
	"errors"
)

const (
	JobPurge           = "purge"
	JobPatternAnalysis = "pattern_analysis"
)

var (
	ErrUnknownJob = errors.New("unknown maintenance job")
	ErrJobRunning = errors.New("maintenance job already running")
)

// Job is a unit of periodic work. Run must be safe to call again after a
// failed run.
type Job interface {
	Name() string
	Run(ctx context.Context) (Report, error)
}

// Report summarises one run for logs and the admin API.
type Report struct {
	Job     string                 `json:"job"`
	Details map[string]interface{} `json:"details"`
}
