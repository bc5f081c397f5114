package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/norteboa/barberpos/internal/config"
	"github.com/norteboa/barberpos/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Barber{},
		&models.Appointment{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
		&models.CashEntry{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// One live appointment per (barber, date, slot). Cancelled and completed
	// rows stay out so the slot can be taken again.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_live_slot
        ON appointments (barber_id, date, slot)
        WHERE status IN ('pending', 'confirmed')
    `)

	return db
}
