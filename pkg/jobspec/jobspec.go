// Package jobspec defines the static description of a batch job: its
// scheduler resource directives, the environment it needs prepared, and the
// single entry command it runs.
package jobspec

import (
	"errors"
	"time"
)

var (
	ErrInvalidCommand  = errors.New("entry command must be provided")
	ErrInvalidCPUs     = errors.New("cpu count must be at least 1")
	ErrInvalidGPUs     = errors.New("gpu count must not be negative")
	ErrInvalidWallTime = errors.New("wall time limit must be greater than 0")
	ErrInvalidName     = errors.New("job name must be provided")
)

// JobSpec is the full launch descriptor for one job. A JobSpec is authored
// once and never mutated at runtime; the scheduler (or the local launcher)
// instantiates running jobs from it.
type JobSpec struct {
	// Name is the human-readable job identifier handed to the scheduler.
	Name string
	// WallTime is the maximum runtime before the scheduler forcibly
	// terminates the job.
	WallTime time.Duration
	// MemoryBytes is the memory the job may consume.
	MemoryBytes uint64
	// CPUs is the number of requested CPU cores.
	CPUs int
	// GPUs is the number of requested GPU accelerators.
	GPUs int
	// Partition is the target scheduling queue.
	Partition string
	// OutputLogPath receives the job's combined stdout and stderr.
	OutputLogPath string
	// Modules are loaded in declared order before the environment is
	// activated.
	Modules []string
	// Environment is the named runtime environment (for example a conda
	// environment) activated after the modules are loaded.
	Environment string
	// WorkingDirectory is entered before the entry command runs.
	WorkingDirectory string
	// Command and Args form the entry command.
	Command string
	Args    []string
}

// Validate checks the resource invariants before a spec is handed to a
// scheduler or launcher. Specs failing validation are rejected up front
// rather than surfacing as a scheduler-side submission error.
func (spec *JobSpec) Validate() error {
	if spec.Name == "" {
		return ErrInvalidName
	}

	if spec.Command == "" {
		return ErrInvalidCommand
	}

	if spec.CPUs < 1 {
		return ErrInvalidCPUs
	}

	if spec.GPUs < 0 {
		return ErrInvalidGPUs
	}

	if spec.WallTime <= 0 {
		return ErrInvalidWallTime
	}

	return nil
}
