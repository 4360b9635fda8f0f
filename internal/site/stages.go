package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
)

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, bs *buildState) error

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying the failing stage and cause.
type StageError struct {
	Kind  StageErrorKind
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage string, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}
func newCanceledStageError(stage string, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// stageDef names a stage function for the runner.
type stageDef struct {
	name string
	fn   Stage
}

// runStages executes stages in order, recording timing and stopping on the
// first fatal error or context cancellation.
func runStages(ctx context.Context, bs *buildState, stages []stageDef) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			bs.report.Outcome = "canceled"
			bs.recorder.IncStageResult(st.name, metrics.ResultCanceled)
			return newCanceledStageError(st.name, ctx.Err())
		default:
		}

		t0 := time.Now()
		err := st.fn(ctx, bs)
		dur := time.Since(t0)

		bs.report.StageDurations[st.name] = dur
		bs.recorder.ObserveStageDuration(st.name, dur)

		if err != nil {
			bs.report.Outcome = "failed"
			bs.recorder.IncStageResult(st.name, metrics.ResultFatal)
			return newFatalStageError(st.name, err)
		}

		bs.recorder.IncStageResult(st.name, metrics.ResultSuccess)
		slog.Debug("Stage complete", logfields.Stage(st.name), logfields.DurationMS(float64(dur.Milliseconds())))
	}
	return nil
}
