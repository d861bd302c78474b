package service

import (
	"encoding/json"
	"time"

	"github.com/Astemirdum/hotel-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
)

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer wraps a Kafka producer behind a circuit breaker so a dead
// broker cannot stall reservation traffic. A nil producer yields a no-op
// enqueuer (events disabled by config).
func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	if producer == nil {
		return noopEnqueuer{}
	}
	return &enqueuerImpl{
		producer: producer,
		cb:       circuit_breaker.New(10, 30*time.Second, 0.5, 3),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	return q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(string, any) error { return nil }
