package service

import (
	"context"
	"time"

	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/internal/repository"
	"github.com/Astemirdum/hotel-service/pkg/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer Enqueuer
}

func NewService(repo repository.Repository, enqueuer Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		enqueuer: enqueuer,
	}
}

func (s *Service) CreateHotel(ctx context.Context, req model.CreateHotelRequest) (model.Hotel, error) {
	return s.repo.CreateHotel(ctx, req)
}

func (s *Service) DeleteHotel(ctx context.Context, hotelID int) error {
	return s.repo.DeleteHotel(ctx, hotelID)
}

func (s *Service) ModifyHotel(ctx context.Context, hotelID int, updates map[string]any) error {
	return s.repo.ModifyHotel(ctx, hotelID, updates)
}

func (s *Service) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	return s.repo.ListHotels(ctx)
}

func (s *Service) CreateCustomer(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error) {
	return s.repo.CreateCustomer(ctx, req)
}

func (s *Service) DeleteCustomer(ctx context.Context, customerID int) error {
	return s.repo.DeleteCustomer(ctx, customerID)
}

func (s *Service) ModifyCustomer(ctx context.Context, customerID int, updates map[string]any) error {
	return s.repo.ModifyCustomer(ctx, customerID, updates)
}

func (s *Service) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	rsv, err := s.repo.CreateReservation(ctx, req)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(model.EventReservationCreated, rsv)
	return rsv, nil
}

func (s *Service) CancelReservation(ctx context.Context, reservationID int) error {
	rsv, err := s.repo.CancelReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	s.publish(model.EventReservationCancelled, rsv)
	return nil
}

func (s *Service) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.repo.ListReservations(ctx)
}

// publish emits an audit event for a committed reservation transition.
// A broker fault must not fail the operation: the write already happened.
func (s *Service) publish(eventType model.EventType, rsv model.Reservation) {
	event := model.ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ReservationID: rsv.ReservationID,
		CustomerID:    rsv.CustomerID,
		HotelID:       rsv.HotelID,
		At:            time.Now().UTC(),
	}
	if err := s.enqueuer.Enqueue(kafka.ReservationEventsTopic, event); err != nil {
		s.log.Warn("enqueue reservation event",
			zap.String("type", string(eventType)),
			zap.Int("reservation_id", rsv.ReservationID),
			zap.Error(err))
	}
}
