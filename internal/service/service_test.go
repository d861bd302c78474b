package service_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/hotel-service/internal/errs"
	"github.com/Astemirdum/hotel-service/internal/model"
	"github.com/Astemirdum/hotel-service/internal/repository"
	"github.com/Astemirdum/hotel-service/internal/service"
	"github.com/Astemirdum/hotel-service/pkg/kafka"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingEnqueuer struct {
	topics []string
	events []model.ReservationEvent
}

func (r *recordingEnqueuer) Enqueue(topic string, v any) error {
	r.topics = append(r.topics, topic)
	r.events = append(r.events, v.(model.ReservationEvent))
	return nil
}

func newService(t *testing.T) (*service.Service, *recordingEnqueuer) {
	t.Helper()
	repo, err := repository.NewRepository(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	enq := &recordingEnqueuer{}
	return service.NewService(repo, enq, zap.NewNop()), enq
}

func TestService_PublishesReservationEvents(t *testing.T) {
	t.Parallel()
	svc, enq := newService(t)
	ctx := context.Background()

	_, err := svc.CreateHotel(ctx, model.CreateHotelRequest{HotelID: 1, Name: "Test", Location: "NY", TotalRooms: 1})
	require.NoError(t, err)
	_, err = svc.CreateCustomer(ctx, model.CreateCustomerRequest{CustomerID: 1, Name: "John", Email: "john@mail.com", Phone: "123"})
	require.NoError(t, err)
	require.Empty(t, enq.events)

	_, err = svc.CreateReservation(ctx, model.CreateReservationRequest{ReservationID: 1, CustomerID: 1, HotelID: 1})
	require.NoError(t, err)
	require.Len(t, enq.events, 1)
	require.Equal(t, kafka.ReservationEventsTopic, enq.topics[0])
	require.Equal(t, model.EventReservationCreated, enq.events[0].Type)
	require.NotEmpty(t, enq.events[0].EventID)

	require.NoError(t, svc.CancelReservation(ctx, 1))
	require.Len(t, enq.events, 2)
	require.Equal(t, model.EventReservationCancelled, enq.events[1].Type)
}

func TestService_NoEventOnFailure(t *testing.T) {
	t.Parallel()
	svc, enq := newService(t)
	ctx := context.Background()

	_, err := svc.CreateReservation(ctx, model.CreateReservationRequest{ReservationID: 1, CustomerID: 99, HotelID: 99})
	require.ErrorIs(t, err, errs.ErrCustomerNotFound)

	require.ErrorIs(t, svc.CancelReservation(ctx, 1), errs.ErrNotFound)
	require.Empty(t, enq.events)
}
