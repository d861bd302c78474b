package handler

import (
	"context"

	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type HotelSystemService interface {
	CreateHotel(ctx context.Context, req model.CreateHotelRequest) (model.Hotel, error)
	DeleteHotel(ctx context.Context, hotelID int) error
	ModifyHotel(ctx context.Context, hotelID int, updates map[string]any) error
	ListHotels(ctx context.Context) ([]model.Hotel, error)

	CreateCustomer(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int) error
	ModifyCustomer(ctx context.Context, customerID int, updates map[string]any) error
	ListCustomers(ctx context.Context) ([]model.Customer, error)

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int) error
	ListReservations(ctx context.Context) ([]model.Reservation, error)
}

var _ HotelSystemService = (*service.Service)(nil)
