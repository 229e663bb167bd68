// Package launcher executes a JobSpec on the local host. It runs the same
// lifecycle body a batch submission would run (module loads, environment
// activation, entry command, guaranteed deactivation) and keeps the combined
// output both in memory for streaming and in the spec's output log file.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hpclaunch/hpclaunch/pkg/batch"
	"github.com/hpclaunch/hpclaunch/pkg/jobspec"
	"github.com/hpclaunch/hpclaunch/pkg/logger"
)

var log = logger.New("launcher")

var (
	ErrJobAlreadyStarted = errors.New("job already started")
	ErrJobNotStarted     = errors.New("job not started")
)

type State string

const (
	StatePending   State = "Pending"
	StateRunning   State = "Running"
	StateCompleted State = "Completed"
	StateFailed    State = "Failed"
	StateCanceled  State = "Canceled"
)

// JobStatus is the observable state of a local job.
type JobStatus struct {
	State State
	// ExitCode is the entry command's exit code once the job has finished.
	// The rendered body propagates it through the shell, so a failing entry
	// command surfaces here instead of being discarded.
	ExitCode int
	// ExitReason carries any launcher-side error encountered while running
	// or cleaning up the job.
	ExitReason string
}

// Job is a single local execution of a JobSpec.
type Job struct {
	UUID uuid.UUID

	spec     *jobspec.JobSpec
	bashPath string

	mutex        sync.Mutex
	cmd          *exec.Cmd
	output       *OutputBuffer
	status       JobStatus
	canceled     bool
	processState *os.ProcessState
	done         chan struct{}
}

func NewJob(spec *jobspec.JobSpec) *Job {
	return &Job{
		UUID:     uuid.New(),
		spec:     spec,
		bashPath: "/bin/bash",
		output:   NewOutputBuffer(),
		status:   JobStatus{State: StatePending},
		done:     make(chan struct{}),
	}
}

// SetBashPath overrides the shell used to run the lifecycle body.
func (job *Job) SetBashPath(path string) {
	job.bashPath = path
}

// LogPath is the resolved output log destination, with the scheduler's %j
// placeholder replaced by this job's id.
func (job *Job) LogPath() string {
	if job.spec.OutputLogPath == "" {
		return ""
	}
	return strings.ReplaceAll(job.spec.OutputLogPath, "%j", job.UUID.String())
}

// Start validates the spec and launches the lifecycle body in the
// background. The body itself guarantees environment deactivation on every
// exit path via its EXIT trap; Start guarantees the log file and script are
// released once the process exits.
func (job *Job) Start() error {
	job.mutex.Lock()
	defer job.mutex.Unlock()

	if err := job.spec.Validate(); err != nil {
		return err
	}

	if job.status.State != StatePending {
		return ErrJobAlreadyStarted
	}

	script, err := os.CreateTemp("", "hpclaunch-*.sh")
	if err != nil {
		return fmt.Errorf("failed to create job script: %w", err)
	}
	scriptPath := script.Name()

	if _, err = script.WriteString(batch.Body(job.spec)); err != nil {
		script.Close()
		os.Remove(scriptPath)
		return fmt.Errorf("failed to write job script: %w", err)
	}
	if err = script.Close(); err != nil {
		os.Remove(scriptPath)
		return fmt.Errorf("failed to write job script: %w", err)
	}

	// combined stdout+stderr, teed to the spec's output log when set
	var sink io.Writer = job.output
	var logFile *os.File
	if logPath := job.LogPath(); logPath != "" {
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			os.Remove(scriptPath)
			return fmt.Errorf("failed to open output log: %w", err)
		}
		sink = io.MultiWriter(job.output, logFile)
	}

	cmd := exec.Command(job.bashPath, scriptPath)
	cmd.Stdout = sink
	cmd.Stderr = sink
	// own process group, so Stop can signal the entry command and not just
	// the shell
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err = cmd.Start(); err != nil {
		if logFile != nil {
			logFile.Close()
		}
		os.Remove(scriptPath)
		return fmt.Errorf("error starting job: %w", err)
	}

	job.cmd = cmd
	job.status.State = StateRunning

	log.Info("started local job",
		zap.String("id", job.UUID.String()),
		zap.String("name", job.spec.Name),
		zap.String("command", batch.CommandLine(job.spec)))

	// reap the process without holding the mutex; cmd.Process.Wait is used
	// instead of cmd.Wait so Status() cannot race the wait
	go job.reap(scriptPath, logFile)

	return nil
}

func (job *Job) reap(scriptPath string, logFile *os.File) {
	processState, waitErr := job.cmd.Process.Wait()

	job.mutex.Lock()
	defer job.mutex.Unlock()

	job.processState = processState
	job.status.ExitCode = processState.ExitCode()

	switch {
	case job.canceled:
		job.status.State = StateCanceled
	case processState.Success():
		job.status.State = StateCompleted
	default:
		job.status.State = StateFailed
	}

	if waitErr != nil {
		job.status.ExitReason += fmt.Sprintf("error running job: %s\n", waitErr)
	}

	if err := job.output.Close(); err != nil {
		job.status.ExitReason += fmt.Sprintf("error closing output: %s\n", err)
	}

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			job.status.ExitReason += fmt.Sprintf("error closing output log: %s\n", err)
		}
	}

	if err := os.Remove(scriptPath); err != nil {
		job.status.ExitReason += fmt.Sprintf("error removing job script: %s\n", err)
	}

	log.Info("local job finished",
		zap.String("id", job.UUID.String()),
		zap.String("state", string(job.status.State)),
		zap.Int("exit_code", job.status.ExitCode))

	close(job.done)
}

// Status returns a snapshot of the job's status.
func (job *Job) Status() JobStatus {
	job.mutex.Lock()
	defer job.mutex.Unlock()
	return job.status
}

// Wait blocks until the job has finished and returns its final status.
func (job *Job) Wait() JobStatus {
	<-job.done
	return job.Status()
}

// Stream returns a reader over the job's combined output. Multiple streams
// over the same job are independent.
func (job *Job) Stream() *OutputReader {
	return NewOutputReader(job.output)
}

// Stop terminates a running job: SIGTERM first, then SIGKILL if the process
// has not exited after ten seconds. Forced termination bypasses the body's
// environment teardown, the same way a scheduler's wall-clock kill would.
func (job *Job) Stop() error {
	job.mutex.Lock()

	if job.cmd == nil {
		job.mutex.Unlock()
		return ErrJobNotStarted
	}

	if job.status.State != StateRunning {
		job.mutex.Unlock()
		return nil
	}

	job.canceled = true
	process := job.cmd.Process
	job.mutex.Unlock()

	if err := syscall.Kill(-process.Pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("error sending SIGTERM: %w", err)
	}

	timer := time.NewTimer(10 * time.Second)
	defer timer.Stop()

	select {
	case <-job.done:
	case <-timer.C:
		log.Warn("job did not exit after SIGTERM, sending SIGKILL",
			zap.String("id", job.UUID.String()))
		if err := syscall.Kill(-process.Pid, syscall.SIGKILL); err != nil {
			return fmt.Errorf("error sending SIGKILL: %w", err)
		}
		<-job.done
	}

	return nil
}
