package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`

	// Comma-separated weekday ids ("1,2,3,4,5"). Display data only:
	// slot availability is decided by the schedule engine, not by these.
	WorkDays  string `gorm:"size:20" json:"work_days"`
	StartTime string `gorm:"size:5;default:'08:00'" json:"start_time"`
	EndTime   string `gorm:"size:5;default:'18:00'" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
