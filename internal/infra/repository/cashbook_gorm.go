package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/norteboa/barberpos/internal/models"
	"github.com/norteboa/barberpos/internal/usecase/cashbook"
)

type CashbookGormRepository struct {
	db *gorm.DB
}

func NewCashbookGormRepository(db *gorm.DB) *CashbookGormRepository {
	return &CashbookGormRepository{db: db}
}

func (r *CashbookGormRepository) CreateEntry(
	ctx context.Context,
	entry *models.CashEntry,
) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *CashbookGormRepository) ListEntries(
	ctx context.Context,
	from string,
	to string,
) ([]models.CashEntry, error) {

	q := r.db.WithContext(ctx).Model(&models.CashEntry{})
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var entries []models.CashEntry
	if err := q.Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Compile-time check
var _ cashbook.Repository = (*CashbookGormRepository)(nil)
