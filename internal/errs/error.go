package errs

import (
	"errors"
)

var (
	ErrAlreadyExists    = errors.New("id already exists")
	ErrNotFound         = errors.New("not found")
	ErrCustomerNotFound = errors.New("customer does not exist")
	ErrHotelNotFound    = errors.New("hotel does not exist")
	ErrNoRooms          = errors.New("no available rooms")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
