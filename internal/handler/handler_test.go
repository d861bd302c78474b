package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/hotel-service/internal/errs"
	"github.com/Astemirdum/hotel-service/internal/handler"
	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/hotel-service/internal/handler/mocks"
)

func TestHandler_CreateHotel(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(s *service_mocks.MockHotelSystemService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"hotel_id":1,"name":"Test","location":"NY","total_rooms":10}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().
					CreateHotel(context.Background(), model.CreateHotelRequest{HotelID: 1, Name: "Test", Location: "NY", TotalRooms: 10}).
					Return(model.NewHotel(1, "Test", "NY", 10), nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"hotel_id":1,"name":"Test","location":"NY","total_rooms":10,"available_rooms":10}`,
			},
		},
		{
			name: "err. duplicate id",
			body: `{"hotel_id":1,"name":"Test","location":"NY","total_rooms":10}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().
					CreateHotel(context.Background(), gomock.Any()).
					Return(model.Hotel{}, errs.ErrAlreadyExists)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"id already exists"}`,
			},
		},
		{
			name:         "err. name required",
			body:         `{"hotel_id":1,"location":"NY","total_rooms":10}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. negative rooms",
			body:         `{"hotel_id":1,"name":"Test","location":"NY","total_rooms":-1}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. internal",
			body: `{"hotel_id":1,"name":"Test","location":"NY","total_rooms":10}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().
					CreateHotel(context.Background(), gomock.Any()).
					Return(model.Hotel{}, errors.New("internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockHotelSystemService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/hotels", h.CreateHotel)

			r := httptest.NewRequest(http.MethodPost, "/hotels", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(s *service_mocks.MockHotelSystemService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"reservation_id":1,"customer_id":1,"hotel_id":1}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().
					CreateReservation(context.Background(), model.CreateReservationRequest{ReservationID: 1, CustomerID: 1, HotelID: 1}).
					Return(model.Reservation{ReservationID: 1, CustomerID: 1, HotelID: 1}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"reservation_id":1,"customer_id":1,"hotel_id":1,"created_at":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. customer does not exist",
			body: `{"reservation_id":1,"customer_id":99,"hotel_id":99}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().
					CreateReservation(context.Background(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrCustomerNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"customer does not exist"}`,
			},
		},
		{
			name: "err. hotel does not exist",
			body: `{"reservation_id":1,"customer_id":1,"hotel_id":99}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().
					CreateReservation(context.Background(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrHotelNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"hotel does not exist"}`,
			},
		},
		{
			name: "err. no rooms",
			body: `{"reservation_id":1,"customer_id":1,"hotel_id":1}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().
					CreateReservation(context.Background(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrNoRooms)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"no available rooms"}`,
			},
		},
		{
			name:         "err. missing ids",
			body:         `{"reservation_id":1}`,
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockHotelSystemService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/reservations", h.CreateReservation)

			r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	type mockBehavior func(s *service_mocks.MockHotelSystemService)

	var tests = []struct {
		name         string
		param        string
		mockBehavior mockBehavior
		expectedCode int
	}{
		{
			name:  "ok",
			param: "1",
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().CancelReservation(context.Background(), 1).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:  "err. not found",
			param: "42",
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {
				s.EXPECT().CancelReservation(context.Background(), 42).Return(errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "err. bad id",
			param:        "abc",
			mockBehavior: func(s *service_mocks.MockHotelSystemService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockHotelSystemService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.DELETE("/reservations/:reservationId", h.CancelReservation)

			r := httptest.NewRequest(http.MethodDelete, "/reservations/"+tt.param, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_ModifyCustomer(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockHotelSystemService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.PATCH("/customers/:customerId", h.ModifyCustomer)

	// unknown keys travel through untouched, the whitelist lives below
	svc.EXPECT().
		ModifyCustomer(context.Background(), 1, map[string]any{"name": "Jane", "unknown": "zzz"}).
		Return(nil)

	r := httptest.NewRequest(http.MethodPatch, "/customers/1", strings.NewReader(`{"name":"Jane","unknown":"zzz"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetHotels(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockHotelSystemService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.GET("/hotels", h.GetHotels)

	svc.EXPECT().
		ListHotels(context.Background()).
		Return([]model.Hotel{{HotelID: 1, Name: "Test", Location: "NY", TotalRooms: 1, AvailableRooms: 0}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/hotels", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"hotel_id":1,"name":"Test","location":"NY","total_rooms":1,"available_rooms":0}]`,
		strings.Trim(w.Body.String(), "\n"))
}
