// Package batch turns a JobSpec into its execution plan and the batch script
// submitted to the scheduler.
package batch

import (
	"strings"

	"github.com/hpclaunch/hpclaunch/pkg/jobspec"
)

type StepKind string

const (
	StepModuleLoad StepKind = "module-load"
	StepActivate   StepKind = "activate"
	StepRun        StepKind = "run"
	StepDeactivate StepKind = "deactivate"
)

// Step is one element of a job's execution plan.
type Step struct {
	Kind StepKind
	// Target is the module name for module-load, the environment name for
	// activate/deactivate, and the full command line for run.
	Target string
}

// Steps returns the ordered execution plan for a spec: every module load in
// declared order, then environment activation, then the entry command, then
// deactivation. The order is a contract; callers must not reorder it.
func Steps(spec *jobspec.JobSpec) []Step {
	steps := make([]Step, 0, len(spec.Modules)+3)

	for _, module := range spec.Modules {
		steps = append(steps, Step{Kind: StepModuleLoad, Target: module})
	}

	if spec.Environment != "" {
		steps = append(steps, Step{Kind: StepActivate, Target: spec.Environment})
	}

	steps = append(steps, Step{Kind: StepRun, Target: CommandLine(spec)})

	if spec.Environment != "" {
		steps = append(steps, Step{Kind: StepDeactivate, Target: spec.Environment})
	}

	return steps
}

// CommandLine renders the entry command with shell-quoted arguments.
func CommandLine(spec *jobspec.JobSpec) string {
	parts := make([]string, 0, len(spec.Args)+1)
	parts = append(parts, shellQuote(spec.Command))
	for _, arg := range spec.Args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

// shellQuote single-quotes a token unless it is plainly safe to pass bare.
func shellQuote(token string) string {
	if token == "" {
		return "''"
	}

	safe := true
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_-./=:%@,+", r):
		default:
			safe = false
		}
		if !safe {
			break
		}
	}
	if safe {
		return token
	}

	return "'" + strings.ReplaceAll(token, "'", `'\''`) + "'"
}
