package batch

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hpclaunch/hpclaunch/pkg/jobspec"
	"github.com/hpclaunch/hpclaunch/pkg/logger"
)

var log = logger.New("batch")

// submittedPattern matches sbatch's acknowledgement line.
var submittedPattern = regexp.MustCompile(`Submitted batch job (\d+)`)

// Submitter hands rendered batch scripts to the external scheduler. It makes
// no guarantee about when a queued job starts and does not retry rejected
// submissions.
type Submitter struct {
	// SbatchPath and ScancelPath are the scheduler binaries, looked up on
	// PATH when not absolute.
	SbatchPath  string
	ScancelPath string
}

func NewSubmitter() *Submitter {
	return &Submitter{
		SbatchPath:  "sbatch",
		ScancelPath: "scancel",
	}
}

// Submit validates the spec, renders its batch script and pipes it to
// sbatch. It returns the scheduler's job id. Submitting the same spec again
// queues a new, independent job.
func (s *Submitter) Submit(ctx context.Context, spec *jobspec.JobSpec) (int64, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	script := Script(spec)

	cmd := exec.CommandContext(ctx, s.SbatchPath)
	cmd.Stdin = strings.NewReader(script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("sbatch failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	match := submittedPattern.FindStringSubmatch(string(output))
	if match == nil {
		return 0, fmt.Errorf("unexpected sbatch output: %s", strings.TrimSpace(string(output)))
	}

	jobID, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse sbatch job id: %w", err)
	}

	log.Info("submitted batch job",
		zap.String("name", spec.Name),
		zap.Int64("job_id", jobID),
		zap.String("partition", spec.Partition))

	return jobID, nil
}

// Cancel asks the scheduler to terminate a queued or running job.
func (s *Submitter) Cancel(ctx context.Context, jobID int64) error {
	cmd := exec.CommandContext(ctx, s.ScancelPath, strconv.FormatInt(jobID, 10))
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("scancel failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	log.Info("canceled batch job", zap.Int64("job_id", jobID))
	return nil
}
