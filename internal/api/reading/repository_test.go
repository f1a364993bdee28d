package reading

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	commonerrors "readings-api-server/internal/api/common/errors"
	"readings-api-server/internal/api/common/filter"
	"readings-api-server/internal/database"
	"readings-api-server/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), logger.Discard)
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Close(db)
	})
	return db
}

func int64p(v int64) *int64 {
	return &v
}

func seed(t *testing.T, repo ReadingRepository, readings ...models.Reading) {
	t.Helper()
	for i := range readings {
		require.NoError(t, repo.Insert(context.Background(), &readings[i]))
	}
}

func TestRepositoryScan(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	seed(t, repo,
		models.Reading{DeviceUUID: "d1", Type: models.Temperature, Value: 50, DateCreated: 100},
		models.Reading{DeviceUUID: "d1", Type: models.Humidity, Value: 30, DateCreated: 150},
		models.Reading{DeviceUUID: "d1", Type: models.Temperature, Value: 70, DateCreated: 200},
		models.Reading{DeviceUUID: "d2", Type: models.Temperature, Value: 10, DateCreated: 150},
	)

	tests := []struct {
		name   string
		filter filter.Filter
		values []int
	}{
		{name: "whole device", filter: filter.Filter{DeviceUUID: "d1"}, values: []int{50, 30, 70}},
		{name: "by type", filter: filter.Filter{DeviceUUID: "d1", SensorType: models.Temperature}, values: []int{50, 70}},
		{name: "start only", filter: filter.Filter{DeviceUUID: "d1", Start: int64p(150)}, values: []int{30, 70}},
		{name: "end only", filter: filter.Filter{DeviceUUID: "d1", End: int64p(150)}, values: []int{50, 30}},
		{name: "inclusive window", filter: filter.Filter{DeviceUUID: "d1", Start: int64p(100), End: int64p(150)}, values: []int{50, 30}},
		{name: "empty window", filter: filter.Filter{DeviceUUID: "d1", SensorType: models.Temperature, Start: int64p(150), End: int64p(150)}, values: []int{}},
		{name: "unknown device", filter: filter.Filter{DeviceUUID: "d3"}, values: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readings, err := repo.Scan(context.Background(), tt.filter)
			require.NoError(t, err)
			require.NotNil(t, readings)

			got := make([]int, 0, len(readings))
			for _, r := range readings {
				assert.Equal(t, tt.filter.DeviceUUID, r.DeviceUUID)
				got = append(got, r.Value)
			}
			assert.Equal(t, tt.values, got)

			values, err := repo.Values(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.values, values)
		})
	}
}

func TestRepositoryAllowsDuplicates(t *testing.T) {
	repo := NewReadingRepository(newTestDB(t))
	reading := models.Reading{DeviceUUID: "d1", Type: models.Humidity, Value: 42, DateCreated: 100}
	seed(t, repo, reading, reading)

	readings, err := repo.Scan(context.Background(), filter.Filter{DeviceUUID: "d1"})
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, readings[0].Value, readings[1].Value)
}

func TestRepositoryStorageError(t *testing.T) {
	db := newTestDB(t)
	repo := NewReadingRepository(db)
	require.NoError(t, database.Close(db))

	err := repo.Insert(context.Background(), &models.Reading{DeviceUUID: "d1", Type: models.Humidity, Value: 1})
	var storageErr commonerrors.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "insert", storageErr.Op)

	_, err = repo.Scan(context.Background(), filter.Filter{DeviceUUID: "d1"})
	assert.Error(t, err)
}
