package models

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	CustomerName    string         `json:"customer_name" gorm:"not null"`
	CustomerPhone   string         `json:"customer_phone" gorm:"not null"`
	CustomerEmail   string         `json:"customer_email"`
	PartySize       int            `json:"party_size" gorm:"not null"`
	ReservationTime time.Time      `json:"reservation_time" gorm:"not null"`
	Status          string         `json:"status" gorm:"default:'pending'"` // pending, confirmed, cancelled
	Notes           string         `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)
