package jobspec

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// specFile is the YAML authoring form of a JobSpec. Memory and wall time are
// written the way people write them ("60 GB", "7:00:00") and converted on
// load.
type specFile struct {
	Name             string   `yaml:"name"`
	WallTime         string   `yaml:"wall_time"`
	Memory           string   `yaml:"memory"`
	CPUs             int      `yaml:"cpus"`
	GPUs             int      `yaml:"gpus"`
	Partition        string   `yaml:"partition"`
	OutputLog        string   `yaml:"output_log"`
	Modules          []string `yaml:"modules"`
	Environment      string   `yaml:"environment"`
	WorkingDirectory string   `yaml:"working_directory"`
	Command          string   `yaml:"command"`
	Args             []string `yaml:"args"`
}

// Parse decodes a YAML job spec and validates it.
func Parse(data []byte) (*JobSpec, error) {
	var file specFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode job spec: %w", err)
	}

	spec := &JobSpec{
		Name:             file.Name,
		CPUs:             file.CPUs,
		GPUs:             file.GPUs,
		Partition:        file.Partition,
		OutputLogPath:    file.OutputLog,
		Modules:          file.Modules,
		Environment:      file.Environment,
		WorkingDirectory: file.WorkingDirectory,
		Command:          file.Command,
		Args:             file.Args,
	}

	if file.WallTime != "" {
		wallTime, err := ParseWallTime(file.WallTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse wall_time: %w", err)
		}
		spec.WallTime = wallTime
	}

	if file.Memory != "" {
		memory, err := humanize.ParseBytes(file.Memory)
		if err != nil {
			return nil, fmt.Errorf("failed to parse memory: %w", err)
		}
		spec.MemoryBytes = memory
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// Load reads and parses the YAML job spec at path.
func Load(path string) (*JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job spec %s: %w", path, err)
	}
	return Parse(data)
}
