package reservation

import (
	"context"

	"gorm.io/gorm"
)

// GormRepository persists reservations through GORM.
type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, rec *Reservation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}
