package repository

import (
	"restaurant_orders/internal/models"
	"time"

	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	GetByID(id uint) (*models.Reservation, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Reservation, error)
	GetByStatus(status string) ([]models.Reservation, error)
	Update(reservation *models.Reservation) error
	Delete(id uint) error
	GetAll() ([]models.Reservation, error)
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *reservationRepository) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("reservation_time BETWEEN ? AND ?", startDate, endDate).Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) GetByStatus(status string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("status = ?", status).Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) Update(reservation *models.Reservation) error {
	return r.db.Save(reservation).Error
}

func (r *reservationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Reservation{}, id).Error
}

func (r *reservationRepository) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Find(&reservations).Error
	return reservations, err
}
