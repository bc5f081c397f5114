package models

import "time"

type Appointment struct {
	// Assigned by the schedule engine, not by the database.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint   `gorm:"index:idx_appointments_barber_day,priority:1" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	Date    string `gorm:"size:10;not null;index:idx_appointments_barber_day,priority:2" json:"date"` // YYYY-MM-DD
	Slot    string `gorm:"size:5;not null" json:"slot"`                                               // HH:MM
	Service string `gorm:"size:255;not null" json:"service"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
