package batch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptDirectives(t *testing.T) {
	script := Script(preprocessSpec())

	assert.True(t, strings.HasPrefix(script, "#!/bin/bash\n"))
	assert.Contains(t, script, "#SBATCH --job-name=PCloud\n")
	assert.Contains(t, script, "#SBATCH --time=7:00:00\n")
	assert.Contains(t, script, "#SBATCH --mem=60G\n")
	assert.Contains(t, script, "#SBATCH --cpus-per-task=2\n")
	assert.Contains(t, script, "#SBATCH --gres=gpu:1\n")
	assert.Contains(t, script, "#SBATCH --partition=gpu\n")
	assert.Contains(t, script, "#SBATCH --output=slurm_output_%j.out\n")
}

func TestScriptOmitsGresWithoutGPUs(t *testing.T) {
	spec := preprocessSpec()
	spec.GPUs = 0

	assert.NotContains(t, Script(spec), "--gres")
}

// The body must keep the lifecycle order: every module load before
// activation, activation before the working-directory change and entry
// command, teardown trap installed before the entry command runs.
func TestBodyOrder(t *testing.T) {
	body := Body(reconstructionTestSpec())

	indexes := []int{
		strings.Index(body, "module load 2022\n"),
		strings.Index(body, "module load Anaconda3/2022.05\n"),
		strings.Index(body, "module load PyTorch/1.12.0-foss-2022a-CUDA-11.7.0\n"),
		strings.Index(body, "module load torchvision/0.13.1-foss-2022a-CUDA-11.7.0\n"),
		strings.Index(body, "source activate bane_of_env\n"),
		strings.Index(body, "trap 'conda deactivate' EXIT\n"),
		strings.Index(body, "cd /home/user/reconstruction\n"),
		strings.Index(body, "python test.py\n"),
	}

	for i, index := range indexes {
		require.GreaterOrEqual(t, index, 0, "line %d missing from body:\n%s", i, body)
		if i > 0 {
			assert.Greater(t, index, indexes[i-1], "line %d out of order in body:\n%s", i)
		}
	}
}

func TestBodyDeactivatesExactlyOnce(t *testing.T) {
	body := Body(preprocessSpec())
	assert.Equal(t, 1, strings.Count(body, "conda deactivate"))
}

func TestBodyPropagatesExitCode(t *testing.T) {
	body := Body(preprocessSpec())
	assert.True(t, strings.HasSuffix(body, "exit $?\n"))
}

func TestFormatMemory(t *testing.T) {
	assert.Equal(t, "60G", formatMemory(60_000_000_000))
	assert.Equal(t, "1500M", formatMemory(1_500_000_000))
	assert.Equal(t, "1M", formatMemory(1))
}
