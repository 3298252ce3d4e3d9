package calculator

import (
	"errors"
	"fmt"

	"github.com/samugi/cal-cu-lator/internal/search"
	"github.com/samugi/cal-cu-lator/model"
)

var (
	// ErrTooManyFields is returned when a dataset has more fields than a
	// selection mask can address.
	ErrTooManyFields = errors.New("too many fields")

	// ErrInvalidRankSize is returned when the rank size is not positive.
	ErrInvalidRankSize = errors.New("rank size must be positive")

	// ErrInvalidGoal is returned when the goal is NaN or infinite.
	ErrInvalidGoal = errors.New("goal must be a finite number")

	// ErrInvalidValue is returned when a field holds a NaN or infinite value.
	ErrInvalidValue = errors.New("field values must be finite numbers")

	// ErrNoJobs is returned when Run is called without jobs.
	ErrNoJobs = errors.New("no jobs")

	// ErrWorkerFailed is returned when a search worker fails unexpectedly.
	ErrWorkerFailed = errors.New("worker failed")
)

// ErrFieldLimit indicates a dataset with more than model.MaxFields fields.
//
// It matches ErrTooManyFields with errors.Is. The original underlying error
// (if any) can be accessed via errors.Unwrap.
type ErrFieldLimit struct {
	Dataset string
	Fields  int
	Max     int
	cause   error
}

func (e *ErrFieldLimit) Error() string {
	return fmt.Sprintf("dataset %q: too many fields: %d, max %d supported", e.Dataset, e.Fields, e.Max)
}

func (e *ErrFieldLimit) Is(target error) bool { return target == ErrTooManyFields }

func (e *ErrFieldLimit) Unwrap() error { return e.cause }

// WorkerError indicates a panic inside a dataset or enumeration worker.
// No result is produced for the dataset.
//
// It matches ErrWorkerFailed with errors.Is.
type WorkerError struct {
	Dataset string
	// Worker is the enumeration worker id, or -1 for the dataset worker.
	Worker int
	Panic  any
	cause  error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("dataset %q: worker %d failed: %v", e.Dataset, e.Worker, e.Panic)
}

func (e *WorkerError) Is(target error) bool { return target == ErrWorkerFailed }

func (e *WorkerError) Unwrap() error { return e.cause }

func translateError(ds model.Dataset, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, search.ErrTooManyFields) {
		return &ErrFieldLimit{Dataset: ds.Name, Fields: len(ds.Fields), Max: model.MaxFields, cause: err}
	}
	var pe *search.PanicError
	if errors.As(err, &pe) {
		return &WorkerError{Dataset: ds.Name, Worker: pe.Worker, Panic: pe.Value, cause: err}
	}

	return err
}
