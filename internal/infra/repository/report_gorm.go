package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/norteboa/barberpos/internal/models"
	"github.com/norteboa/barberpos/internal/usecase/report"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) CountClientsCreatedBetween(
	ctx context.Context,
	from string,
	to string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("DATE(created_at) BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *ReportGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC, slot ASC").
		Find(&apps).Error
	return apps, err
}

func (r *ReportGormRepository) ListSalesBetween(
	ctx context.Context,
	from string,
	to string,
) ([]models.Sale, error) {

	var sales []models.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").
		Find(&sales).Error
	return sales, err
}

func (r *ReportGormRepository) ListCashEntriesBetween(
	ctx context.Context,
	from string,
	to string,
) ([]models.CashEntry, error) {

	var entries []models.CashEntry
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// Compile-time check
var _ report.Repository = (*ReportGormRepository)(nil)
