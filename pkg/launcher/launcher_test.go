package launcher

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hpclaunch/hpclaunch/pkg/jobspec"
)

func testSpec(command string, args ...string) *jobspec.JobSpec {
	return &jobspec.JobSpec{
		Name:     "test-job",
		WallTime: time.Hour,
		CPUs:     1,
		Command:  command,
		Args:     args,
	}
}

func Test_Job_Completed(t *testing.T) {
	t.Parallel()

	spec := testSpec("echo", "hello", "world")
	spec.OutputLogPath = filepath.Join(t.TempDir(), "job_%j.out")

	job := NewJob(spec)

	if err := job.Start(); err != nil {
		t.Fatalf("error starting job: %v", err)
	}

	output, err := io.ReadAll(job.Stream())
	if err != nil {
		t.Fatalf("error reading output: %v", err)
	}

	status := job.Wait()

	if status.State != StateCompleted {
		t.Errorf("expected job state to be 'Completed', got '%s'", status.State)
	}

	if status.ExitCode != 0 {
		t.Errorf("expected job exit code to be 0, got %d", status.ExitCode)
	}

	if string(output) != "hello world\n" {
		t.Errorf("expected output to be 'hello world', got %q", output)
	}

	logged, err := os.ReadFile(job.LogPath())
	if err != nil {
		t.Fatalf("error reading output log: %v", err)
	}

	if string(logged) != "hello world\n" {
		t.Errorf("expected output log to be 'hello world', got %q", logged)
	}
}

func Test_Job_FailurePropagatesExitCode(t *testing.T) {
	t.Parallel()

	job := NewJob(testSpec("false"))

	if err := job.Start(); err != nil {
		t.Fatalf("error starting job: %v", err)
	}

	status := job.Wait()

	if status.State != StateFailed {
		t.Errorf("expected job state to be 'Failed', got '%s'", status.State)
	}

	if status.ExitCode != 1 {
		t.Errorf("expected job exit code to be 1, got %d", status.ExitCode)
	}
}

func Test_Job_TeardownRunsOnEntryCommandFailure(t *testing.T) {
	t.Parallel()

	// There is no conda on the test host, so the deactivation attempt from
	// the EXIT trap surfaces as exactly one "command not found" complaint,
	// which is enough to show teardown ran once even though the entry
	// command failed.
	spec := testSpec("false")
	spec.Environment = "intrinsic"

	job := NewJob(spec)

	if err := job.Start(); err != nil {
		t.Fatalf("error starting job: %v", err)
	}

	output, err := io.ReadAll(job.Stream())
	if err != nil {
		t.Fatalf("error reading output: %v", err)
	}

	status := job.Wait()

	if status.State != StateFailed {
		t.Errorf("expected job state to be 'Failed', got '%s'", status.State)
	}

	if got := strings.Count(string(output), "conda: command not found"); got != 1 {
		t.Errorf("expected exactly one deactivation attempt, got %d in output %q", got, output)
	}
}

func Test_Job_RunsInWorkingDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	spec := testSpec("pwd")
	spec.WorkingDirectory = dir

	job := NewJob(spec)

	if err := job.Start(); err != nil {
		t.Fatalf("error starting job: %v", err)
	}

	output, err := io.ReadAll(job.Stream())
	if err != nil {
		t.Fatalf("error reading output: %v", err)
	}

	if status := job.Wait(); status.State != StateCompleted {
		t.Fatalf("expected job state to be 'Completed', got '%s'", status.State)
	}

	if strings.TrimSpace(string(output)) != dir {
		t.Errorf("expected output to be %q, got %q", dir, output)
	}
}

func Test_Job_StartTwice(t *testing.T) {
	t.Parallel()

	job := NewJob(testSpec("true"))

	if err := job.Start(); err != nil {
		t.Fatalf("error starting job: %v", err)
	}
	defer job.Wait()

	if err := job.Start(); err != ErrJobAlreadyStarted {
		t.Errorf("expected ErrJobAlreadyStarted, got %v", err)
	}
}

func Test_Job_RejectsInvalidSpec(t *testing.T) {
	t.Parallel()

	spec := testSpec("true")
	spec.CPUs = 0

	if err := NewJob(spec).Start(); err != jobspec.ErrInvalidCPUs {
		t.Errorf("expected ErrInvalidCPUs, got %v", err)
	}
}

func Test_Job_StopBeforeStart(t *testing.T) {
	t.Parallel()

	if err := NewJob(testSpec("true")).Stop(); err != ErrJobNotStarted {
		t.Errorf("expected ErrJobNotStarted, got %v", err)
	}
}

func Test_Job_Stop(t *testing.T) {
	t.Parallel()

	job := NewJob(testSpec("sleep", "30"))

	if err := job.Start(); err != nil {
		t.Fatalf("error starting job: %v", err)
	}

	if status := job.Status(); status.State != StateRunning {
		t.Fatalf("expected job state to be 'Running', got '%s'", status.State)
	}

	if err := job.Stop(); err != nil {
		t.Fatalf("error stopping job: %v", err)
	}

	if status := job.Status(); status.State != StateCanceled {
		t.Errorf("expected job state to be 'Canceled', got '%s'", status.State)
	}
}
