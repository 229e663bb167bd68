package jobspec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() *JobSpec {
	return &JobSpec{
		Name:             "PCloud",
		WallTime:         7 * time.Hour,
		MemoryBytes:      60_000_000_000,
		CPUs:             2,
		GPUs:             1,
		Partition:        "gpu",
		OutputLogPath:    "slurm_output_%j.out",
		Modules:          []string{"2022", "Anaconda3/2022.05"},
		Environment:      "intrinsic",
		WorkingDirectory: "/home/user/pointcloud",
		Command:          "python",
		Args:             []string{"pc_preprocessing.py"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validSpec().Validate())
}

func TestValidateRejectsZeroCPUs(t *testing.T) {
	spec := validSpec()
	spec.CPUs = 0
	assert.ErrorIs(t, spec.Validate(), ErrInvalidCPUs)
}

func TestValidateRejectsNegativeGPUs(t *testing.T) {
	spec := validSpec()
	spec.GPUs = -1
	assert.ErrorIs(t, spec.Validate(), ErrInvalidGPUs)
}

func TestValidateRejectsZeroWallTime(t *testing.T) {
	spec := validSpec()
	spec.WallTime = 0
	assert.ErrorIs(t, spec.Validate(), ErrInvalidWallTime)
}

func TestValidateRejectsMissingCommand(t *testing.T) {
	spec := validSpec()
	spec.Command = ""
	assert.ErrorIs(t, spec.Validate(), ErrInvalidCommand)
}

func TestValidateRejectsMissingName(t *testing.T) {
	spec := validSpec()
	spec.Name = ""
	assert.ErrorIs(t, spec.Validate(), ErrInvalidName)
}

func TestValidateAllowsZeroGPUs(t *testing.T) {
	spec := validSpec()
	spec.GPUs = 0
	assert.NoError(t, spec.Validate())
}
