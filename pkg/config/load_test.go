package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	loaded = false
	cfg = Config{}

	c := GetConfig()

	assert.Equal(t, 8080, c.Grpc.Port)
	assert.Equal(t, "sbatch", c.Batch.SbatchPath)
	assert.Equal(t, "scancel", c.Batch.ScancelPath)
	assert.Equal(t, "/bin/bash", c.Batch.BashPath)
	assert.NotEmpty(t, c.General.DatabasePath)
	assert.NotEmpty(t, c.General.LogDir)
	assert.False(t, c.General.Debug)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "general": {"database_path": "/var/lib/hpclaunch/jobs.db", "debug": true},
  "grpc": {"port": 9090},
  "batch": {"sbatch_path": "/opt/slurm/bin/sbatch"}
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hpclaunch_config.json"), []byte(content), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	loaded = false
	cfg = Config{}
	LoadConfig()
	c := GetConfig()

	assert.Equal(t, "/var/lib/hpclaunch/jobs.db", c.General.DatabasePath)
	assert.True(t, c.General.Debug)
	assert.Equal(t, 9090, c.Grpc.Port)
	assert.Equal(t, "/opt/slurm/bin/sbatch", c.Batch.SbatchPath)
	// untouched keys keep their defaults
	assert.Equal(t, "scancel", c.Batch.ScancelPath)
}
