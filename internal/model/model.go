package model

import (
	"time"
)

// Hotel is one record of the hotels collection. JSON tags are the storage
// field names, so structs round-trip against files written by older tooling.
type Hotel struct {
	HotelID        int    `json:"hotel_id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	TotalRooms     int    `json:"total_rooms"`
	AvailableRooms int    `json:"available_rooms"`
}

type Customer struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

type Reservation struct {
	ReservationID int       `json:"reservation_id"`
	CustomerID    int       `json:"customer_id"`
	HotelID       int       `json:"hotel_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewHotel starts with every room available.
func NewHotel(hotelID int, name, location string, totalRooms int) Hotel {
	return Hotel{
		HotelID:        hotelID,
		Name:           name,
		Location:       location,
		TotalRooms:     totalRooms,
		AvailableRooms: totalRooms,
	}
}

// NewReservation stamps the creation time at construction, not at save time.
func NewReservation(reservationID, customerID, hotelID int) Reservation {
	return Reservation{
		ReservationID: reservationID,
		CustomerID:    customerID,
		HotelID:       hotelID,
		CreatedAt:     time.Now().UTC(),
	}
}

// Apply performs a whitelist field update: only keys naming an existing
// mutable field are applied, unknown keys are ignored without error and
// hotel_id stays immutable.
func (h *Hotel) Apply(updates map[string]any) {
	for key, value := range updates {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				h.Name = v
			}
		case "location":
			if v, ok := value.(string); ok {
				h.Location = v
			}
		case "total_rooms":
			if v, ok := asInt(value); ok {
				h.TotalRooms = v
			}
		case "available_rooms":
			if v, ok := asInt(value); ok {
				h.AvailableRooms = v
			}
		}
	}
}

func (c *Customer) Apply(updates map[string]any) {
	for key, value := range updates {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				c.Name = v
			}
		case "email":
			if v, ok := value.(string); ok {
				c.Email = v
			}
		case "phone":
			if v, ok := value.(string); ok {
				c.Phone = v
			}
		}
	}
}

// asInt accepts the numeric types a decoded JSON body may carry.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

type CreateHotelRequest struct {
	HotelID    int    `json:"hotel_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Location   string `json:"location" validate:"required"`
	TotalRooms int    `json:"total_rooms" validate:"gte=0"`
}

type CreateCustomerRequest struct {
	CustomerID int    `json:"customer_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
}

type CreateReservationRequest struct {
	ReservationID int `json:"reservation_id" validate:"required"`
	CustomerID    int `json:"customer_id" validate:"required"`
	HotelID       int `json:"hotel_id" validate:"required"`
}

type EventType string

const (
	EventReservationCreated   EventType = "RESERVATION_CREATED"
	EventReservationCancelled EventType = "RESERVATION_CANCELLED"
)

// ReservationEvent is the audit message published per reservation
// lifecycle transition.
type ReservationEvent struct {
	EventID       string    `json:"event_id"`
	Type          EventType `json:"type"`
	ReservationID int       `json:"reservation_id"`
	CustomerID    int       `json:"customer_id"`
	HotelID       int       `json:"hotel_id"`
	At            time.Time `json:"at"`
}
