package services

import (
	"errors"
	"strings"
	"time"

	"restaurant_orders/internal/models"
	"restaurant_orders/internal/repository"
)

var (
	ErrInvalidPartySize      = errors.New("party size must be positive")
	ErrReservationInPast     = errors.New("reservation time must be in the future")
	ErrMissingContact        = errors.New("customer name and phone are required")
	ErrReservationNotPending = errors.New("reservation is not pending")
	ErrReservationNotFound   = errors.New("reservation not found")
)

type ReservationService interface {
	CreateReservation(reservation *models.Reservation) error
	GetReservation(id uint) (*models.Reservation, error)
	GetReservationsByDate(date time.Time) ([]models.Reservation, error)
	ConfirmReservation(id uint) error
	CancelReservation(id uint) error
	GetAllReservations() ([]models.Reservation, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
}

func NewReservationService(reservationRepo repository.ReservationRepository) ReservationService {
	return &reservationService{reservationRepo: reservationRepo}
}

func (s *reservationService) CreateReservation(reservation *models.Reservation) error {
	if strings.TrimSpace(reservation.CustomerName) == "" || strings.TrimSpace(reservation.CustomerPhone) == "" {
		return ErrMissingContact
	}
	if reservation.PartySize <= 0 {
		return ErrInvalidPartySize
	}
	if reservation.ReservationTime.Before(time.Now()) {
		return ErrReservationInPast
	}

	reservation.Status = string(models.ReservationPending)
	return s.reservationRepo.Create(reservation)
}

func (s *reservationService) GetReservation(id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	return reservation, nil
}

func (s *reservationService) GetReservationsByDate(date time.Time) ([]models.Reservation, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return s.reservationRepo.GetByDateRange(start, start.Add(24*time.Hour))
}

func (s *reservationService) ConfirmReservation(id uint) error {
	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return ErrReservationNotFound
	}
	if reservation.Status != string(models.ReservationPending) {
		return ErrReservationNotPending
	}

	reservation.Status = string(models.ReservationConfirmed)
	return s.reservationRepo.Update(reservation)
}

func (s *reservationService) CancelReservation(id uint) error {
	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return ErrReservationNotFound
	}

	reservation.Status = string(models.ReservationCancelled)
	return s.reservationRepo.Update(reservation)
}

func (s *reservationService) GetAllReservations() ([]models.Reservation, error) {
	return s.reservationRepo.GetAll()
}
