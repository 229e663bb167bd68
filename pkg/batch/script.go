package batch

import (
	"fmt"
	"strings"

	"github.com/hpclaunch/hpclaunch/pkg/jobspec"
)

const megabyte = 1_000_000

// Script renders the complete batch script for a spec: the #SBATCH resource
// directives followed by the execution body. The result is what gets piped
// to sbatch.
func Script(spec *jobspec.JobSpec) string {
	var b strings.Builder

	b.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&b, "#SBATCH --job-name=%s\n", spec.Name)
	fmt.Fprintf(&b, "#SBATCH --time=%s\n", jobspec.FormatWallTime(spec.WallTime))
	if spec.MemoryBytes > 0 {
		fmt.Fprintf(&b, "#SBATCH --mem=%s\n", formatMemory(spec.MemoryBytes))
	}
	fmt.Fprintf(&b, "#SBATCH --cpus-per-task=%d\n", spec.CPUs)
	if spec.GPUs > 0 {
		fmt.Fprintf(&b, "#SBATCH --gres=gpu:%d\n", spec.GPUs)
	}
	if spec.Partition != "" {
		fmt.Fprintf(&b, "#SBATCH --partition=%s\n", spec.Partition)
	}
	if spec.OutputLogPath != "" {
		fmt.Fprintf(&b, "#SBATCH --output=%s\n", spec.OutputLogPath)
	}
	b.WriteString("\n")
	b.WriteString(Body(spec))

	return b.String()
}

// Body renders the execution body shared by batch and local runs. The steps
// come from Steps so the rendered script and the logical plan cannot drift:
// module loads first, then activation, then the entry command in its working
// directory. Deactivation is installed as an EXIT trap immediately after
// activation, so it runs exactly once on every exit path, and the entry
// command's exit code becomes the script's exit code.
func Body(spec *jobspec.JobSpec) string {
	var b strings.Builder

	for _, step := range Steps(spec) {
		switch step.Kind {
		case StepModuleLoad:
			fmt.Fprintf(&b, "module load %s\n", step.Target)
		case StepActivate:
			fmt.Fprintf(&b, "source activate %s\n", step.Target)
			b.WriteString("trap 'conda deactivate' EXIT\n")
		case StepRun:
			b.WriteString("\n")
			if spec.WorkingDirectory != "" {
				fmt.Fprintf(&b, "cd %s\n", shellQuote(spec.WorkingDirectory))
			}
			fmt.Fprintf(&b, "%s\n", step.Target)
			b.WriteString("exit $?\n")
		case StepDeactivate:
			// covered by the EXIT trap
		}
	}

	return b.String()
}

// formatMemory renders a byte count the way sbatch expects --mem, preferring
// whole gigabytes.
func formatMemory(bytes uint64) string {
	const gigabyte = 1000 * megabyte
	if bytes%gigabyte == 0 {
		return fmt.Sprintf("%dG", bytes/gigabyte)
	}
	// round up to the next megabyte
	return fmt.Sprintf("%dM", (bytes+megabyte-1)/megabyte)
}
