package repository

import (
	"context"
	"os"
	"sync"

	"github.com/Astemirdum/hotel-service/internal/errs"
	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/internal/store"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repository interface {
	CreateHotel(ctx context.Context, req model.CreateHotelRequest) (model.Hotel, error)
	DeleteHotel(ctx context.Context, hotelID int) error
	ModifyHotel(ctx context.Context, hotelID int, updates map[string]any) error
	ListHotels(ctx context.Context) ([]model.Hotel, error)

	CreateCustomer(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int) error
	ModifyCustomer(ctx context.Context, customerID int, updates map[string]any) error
	ListCustomers(ctx context.Context) ([]model.Customer, error)

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int) (model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
}

// repository owns the three backing collections. Every operation reloads
// the collections it touches and rewrites them in full; nothing is cached
// between calls, the files are the only source of truth.
type repository struct {
	// serializes load-mutate-save cycles of in-process callers. Does not
	// protect against other processes writing the same files.
	mu sync.Mutex

	hotels       *store.Collection[model.Hotel]
	customers    *store.Collection[model.Customer]
	reservations *store.Collection[model.Reservation]
	log          *zap.Logger
}

func NewRepository(dataDir string, log *zap.Logger) (*repository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	log = log.Named("repo")
	return &repository{
		hotels:       store.NewCollection[model.Hotel](dataDir, "hotels", log),
		customers:    store.NewCollection[model.Customer](dataDir, "customers", log),
		reservations: store.NewCollection[model.Reservation](dataDir, "reservations", log),
		log:          log,
	}, nil
}

func (r *repository) CreateHotel(_ context.Context, req model.CreateHotelRequest) (model.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hotels := r.hotels.Load()
	if hasHotel(hotels, req.HotelID) {
		r.log.Debug("hotel id already exists", zap.Int("hotel_id", req.HotelID))
		return model.Hotel{}, errs.ErrAlreadyExists
	}
	hotel := model.NewHotel(req.HotelID, req.Name, req.Location, req.TotalRooms)
	r.hotels.Save(append(hotels, hotel))
	return hotel, nil
}

func (r *repository) DeleteHotel(_ context.Context, hotelID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hotels := r.hotels.Load()
	kept := make([]model.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.HotelID != hotelID {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(hotels) {
		r.log.Debug("hotel not found", zap.Int("hotel_id", hotelID))
		return errs.ErrNotFound
	}
	// reservations referencing the hotel stay untouched: the relation is a
	// weak back-reference, recorded by id only.
	r.hotels.Save(kept)
	return nil
}

func (r *repository) ModifyHotel(_ context.Context, hotelID int, updates map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hotels := r.hotels.Load()
	i, ok := findHotel(hotels, hotelID)
	if !ok {
		r.log.Debug("hotel not found", zap.Int("hotel_id", hotelID))
		return errs.ErrNotFound
	}
	hotels[i].Apply(updates)
	r.hotels.Save(hotels)
	return nil
}

func (r *repository) ListHotels(_ context.Context) ([]model.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hotels.Load(), nil
}

func (r *repository) CreateCustomer(_ context.Context, req model.CreateCustomerRequest) (model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := r.customers.Load()
	if hasCustomer(customers, req.CustomerID) {
		r.log.Debug("customer id already exists", zap.Int("customer_id", req.CustomerID))
		return model.Customer{}, errs.ErrAlreadyExists
	}
	customer := model.Customer{
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	r.customers.Save(append(customers, customer))
	return customer, nil
}

func (r *repository) DeleteCustomer(_ context.Context, customerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := r.customers.Load()
	kept := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if c.CustomerID != customerID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(customers) {
		r.log.Debug("customer not found", zap.Int("customer_id", customerID))
		return errs.ErrNotFound
	}
	r.customers.Save(kept)
	return nil
}

func (r *repository) ModifyCustomer(_ context.Context, customerID int, updates map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := r.customers.Load()
	for i := range customers {
		if customers[i].CustomerID == customerID {
			customers[i].Apply(updates)
			r.customers.Save(customers)
			return nil
		}
	}
	r.log.Debug("customer not found", zap.Int("customer_id", customerID))
	return errs.ErrNotFound
}

func (r *repository) ListCustomers(_ context.Context) ([]model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.customers.Load(), nil
}

// CreateReservation validates against all three collections, decrements the
// hotel's room counter and appends the reservation. Hotels are saved before
// reservations; there is no rollback spanning the two writes.
func (r *repository) CreateReservation(_ context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations := r.reservations.Load()
	hotels := r.hotels.Load()
	customers := r.customers.Load()

	if hasReservation(reservations, req.ReservationID) {
		r.log.Debug("reservation id already exists", zap.Int("reservation_id", req.ReservationID))
		return model.Reservation{}, errs.ErrAlreadyExists
	}
	if !hasCustomer(customers, req.CustomerID) {
		r.log.Debug("customer does not exist", zap.Int("customer_id", req.CustomerID))
		return model.Reservation{}, errs.ErrCustomerNotFound
	}
	i, ok := findHotel(hotels, req.HotelID)
	if !ok {
		r.log.Debug("hotel does not exist", zap.Int("hotel_id", req.HotelID))
		return model.Reservation{}, errs.ErrHotelNotFound
	}
	if hotels[i].AvailableRooms <= 0 {
		r.log.Debug("no available rooms", zap.Int("hotel_id", req.HotelID))
		return model.Reservation{}, errs.ErrNoRooms
	}

	hotels[i].AvailableRooms--
	reservation := model.NewReservation(req.ReservationID, req.CustomerID, req.HotelID)
	reservations = append(reservations, reservation)

	r.hotels.Save(hotels)
	r.reservations.Save(reservations)
	return reservation, nil
}

// CancelReservation removes the record and gives the room back to every
// hotel matching the reservation's hotel_id (exactly one while the
// uniqueness invariant holds).
func (r *repository) CancelReservation(_ context.Context, reservationID int) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations := r.reservations.Load()
	hotels := r.hotels.Load()

	for idx, rsv := range reservations {
		if rsv.ReservationID != reservationID {
			continue
		}
		for i := range hotels {
			if hotels[i].HotelID == rsv.HotelID {
				hotels[i].AvailableRooms++
			}
		}
		reservations = append(reservations[:idx], reservations[idx+1:]...)
		r.hotels.Save(hotels)
		r.reservations.Save(reservations)
		return rsv, nil
	}

	r.log.Debug("reservation not found", zap.Int("reservation_id", reservationID))
	return model.Reservation{}, errs.ErrNotFound
}

func (r *repository) ListReservations(_ context.Context) ([]model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reservations.Load(), nil
}
