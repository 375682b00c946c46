package models

import "time"

// OperatingHours é uma linha por dia da semana, pertencente ao negócio.
// Horários no formato HH:MM; break vazio = sem pausa.
type OperatingHours struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index:idx_operating_hours_day,unique" json:"business_id"`

	Weekday int `gorm:"index:idx_operating_hours_day,unique" json:"weekday"`

	OpensAt    string `json:"opens_at"`
	ClosesAt   string `json:"closes_at"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
