package repository

import (
	"github.com/Astemirdum/hotel-service/internal/model"
)

// Integrity rules: pure linear scans over already-loaded collections.

func hasHotel(hotels []model.Hotel, hotelID int) bool {
	_, ok := findHotel(hotels, hotelID)
	return ok
}

func findHotel(hotels []model.Hotel, hotelID int) (int, bool) {
	for i := range hotels {
		if hotels[i].HotelID == hotelID {
			return i, true
		}
	}
	return 0, false
}

func hasCustomer(customers []model.Customer, customerID int) bool {
	for i := range customers {
		if customers[i].CustomerID == customerID {
			return true
		}
	}
	return false
}

func hasReservation(reservations []model.Reservation, reservationID int) bool {
	for i := range reservations {
		if reservations[i].ReservationID == reservationID {
			return true
		}
	}
	return false
}
