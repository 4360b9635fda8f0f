package site

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Report summarizes one build for logs, metrics, and the optional JSON dump.
type Report struct {
	BuildID        string                   `json:"build_id"`
	StartedAt      time.Time                `json:"started_at"`
	Duration       time.Duration            `json:"duration_ns"`
	Outcome        string                   `json:"outcome"` // success|warning|failed|canceled
	Pages          int                      `json:"pages"`
	Indexes        int                      `json:"indexes"`
	Feeds          int                      `json:"feeds"`
	StaticFiles    int                      `json:"static_files"`
	SkippedFiles   int                      `json:"skipped_files"`
	Warnings       []string                 `json:"warnings,omitempty"`
	StageDurations map[string]time.Duration `json:"stage_durations_ns"`
}

func newReport() *Report {
	return &Report{
		BuildID:        uuid.NewString(),
		StartedAt:      time.Now(),
		Outcome:        "success",
		StageDurations: make(map[string]time.Duration),
	}
}

// AddWarning records a non-fatal problem and degrades the outcome.
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
	if r.Outcome == "success" {
		r.Outcome = "warning"
	}
}

// Finish stamps the total duration.
func (r *Report) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// WriteJSON dumps the report to path.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return sgerrors.InternalError("marshal build report", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return sgerrors.OutputWriteError(path, err)
	}
	return nil
}
