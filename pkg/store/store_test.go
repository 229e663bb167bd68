package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *Store {
	t.Helper()

	s, err := Open(":memory:")
	require.NoError(t, err)
	return s
}

func TestCreateAndGet(t *testing.T) {
	s := setup(t)

	record := &JobRecord{
		UUID:           uuid.NewString(),
		Name:           "PCloud",
		Mode:           ModeBatch,
		State:          "Pending",
		SchedulerJobID: 424242,
		Partition:      "gpu",
		CPUs:           2,
		GPUs:           1,
		MemoryBytes:    60_000_000_000,
		WallTimeSecs:   7 * 3600,
		LogPath:        "slurm_output_424242.out",
	}
	require.NoError(t, s.Create(record))

	loaded, err := s.Get(record.UUID)
	require.NoError(t, err)
	assert.Equal(t, "PCloud", loaded.Name)
	assert.Equal(t, ModeBatch, loaded.Mode)
	assert.Equal(t, int64(424242), loaded.SchedulerJobID)
	assert.Equal(t, uint64(60_000_000_000), loaded.MemoryBytes)
}

func TestGetMissing(t *testing.T) {
	s := setup(t)

	_, err := s.Get(uuid.NewString())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestUpdateState(t *testing.T) {
	s := setup(t)

	record := &JobRecord{UUID: uuid.NewString(), Name: "j", Mode: ModeLocal, State: "Running"}
	require.NoError(t, s.Create(record))

	require.NoError(t, s.UpdateState(record.UUID, "Failed", 2))

	loaded, err := s.Get(record.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Failed", loaded.State)
	assert.Equal(t, 2, loaded.ExitCode)
}

func TestUpdateStateMissing(t *testing.T) {
	s := setup(t)

	assert.ErrorIs(t, s.UpdateState(uuid.NewString(), "Failed", 1), ErrJobNotFound)
}

func TestList(t *testing.T) {
	s := setup(t)

	require.NoError(t, s.Create(&JobRecord{UUID: uuid.NewString(), Name: "a", Mode: ModeLocal, State: "Running"}))
	require.NoError(t, s.Create(&JobRecord{UUID: uuid.NewString(), Name: "b", Mode: ModeBatch, State: "Pending"}))

	records, err := s.List()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
