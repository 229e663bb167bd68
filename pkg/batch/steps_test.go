package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpclaunch/hpclaunch/pkg/jobspec"
)

func preprocessSpec() *jobspec.JobSpec {
	return &jobspec.JobSpec{
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

func reconstructionTestSpec() *jobspec.JobSpec {
	return &jobspec.JobSpec{
		Name:          "ReconTest",
		WallTime:      30 * time.Hour,
		MemoryBytes:   60_000_000_000,
		CPUs:          2,
		GPUs:          1,
		Partition:     "gpu",
		OutputLogPath: "slurm_output_%j.out",
		Modules: []string{
			"2022",
			"Anaconda3/2022.05",
			"PyTorch/1.12.0-foss-2022a-CUDA-11.7.0",
			"torchvision/0.13.1-foss-2022a-CUDA-11.7.0",
		},
		Environment:      "bane_of_env",
		WorkingDirectory: "/home/user/reconstruction",
		Command:          "python",
		Args:             []string{"test.py"},
	}
}

func TestStepsOrderPreprocess(t *testing.T) {
	steps := Steps(preprocessSpec())

	want := []Step{
		{Kind: StepModuleLoad, Target: "2022"},
		{Kind: StepModuleLoad, Target: "Anaconda3/2022.05"},
		{Kind: StepActivate, Target: "intrinsic"},
		{Kind: StepRun, Target: "python pc_preprocessing.py"},
		{Kind: StepDeactivate, Target: "intrinsic"},
	}
	assert.Equal(t, want, steps)
}

func TestStepsOrderReconstructionTest(t *testing.T) {
	steps := Steps(reconstructionTestSpec())

	require.Len(t, steps, 7)
	for i, module := range reconstructionTestSpec().Modules {
		assert.Equal(t, StepModuleLoad, steps[i].Kind)
		assert.Equal(t, module, steps[i].Target)
	}
	assert.Equal(t, Step{Kind: StepActivate, Target: "bane_of_env"}, steps[4])
	assert.Equal(t, Step{Kind: StepRun, Target: "python test.py"}, steps[5])
	assert.Equal(t, Step{Kind: StepDeactivate, Target: "bane_of_env"}, steps[6])
}

func TestStepsDeactivateExactlyOnce(t *testing.T) {
	deactivations := 0
	for _, step := range Steps(preprocessSpec()) {
		if step.Kind == StepDeactivate {
			deactivations++
		}
	}
	assert.Equal(t, 1, deactivations)
}

func TestStepsWithoutEnvironment(t *testing.T) {
	spec := preprocessSpec()
	spec.Environment = ""
	spec.Modules = nil

	steps := Steps(spec)
	require.Len(t, steps, 1)
	assert.Equal(t, StepRun, steps[0].Kind)
}

func TestCommandLineQuoting(t *testing.T) {
	spec := &jobspec.JobSpec{Command: "python", Args: []string{"test.py", "--tag", "point cloud"}}
	assert.Equal(t, `python test.py --tag 'point cloud'`, CommandLine(spec))
}
