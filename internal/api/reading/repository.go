package reading

import (
	"context"

	"gorm.io/gorm"

	commonerrors "readings-api-server/internal/api/common/errors"
	"readings-api-server/internal/api/common/filter"
	"readings-api-server/internal/models"
)

type readingRepository struct {
	db *gorm.DB
}

var _ ReadingRepository = (*readingRepository)(nil)

func NewReadingRepository(db *gorm.DB) ReadingRepository {
	return &readingRepository{
		db: db,
	}
}

// Insert stores one reading in a single statement, so it is either written
// completely or not at all.
func (r *readingRepository) Insert(ctx context.Context, reading *models.Reading) error {
	if err := r.db.WithContext(ctx).Create(reading).Error; err != nil {
		return commonerrors.StorageErr("insert", err)
	}
	return nil
}

// Scan returns the matching readings in insertion order, or an empty slice.
func (r *readingRepository) Scan(ctx context.Context, f filter.Filter) ([]models.Reading, error) {
	readings := make([]models.Reading, 0)
	err := r.db.WithContext(ctx).
		Scopes(f.Scope).
		Order("id").
		Find(&readings).
		Error
	if err != nil {
		return nil, commonerrors.StorageErr("scan", err)
	}
	return readings, nil
}

func (r *readingRepository) Values(ctx context.Context, f filter.Filter) ([]int, error) {
	values := make([]int, 0)
	err := r.db.WithContext(ctx).
		Scopes(f.Scope).
		Order("id").
		Pluck("value", &values).
		Error
	if err != nil {
		return nil, commonerrors.StorageErr("scan", err)
	}
	return values, nil
}
