package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// KafkaConfig настройки публикации событий в Kafka
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	Source       string
	RequireAcks  int    // -1 = all, 0 = none, 1 = leader
	Compression  string // "none", "gzip", "snappy", "lz4", "zstd"
	MaxAttempts  int
	BatchTimeout time.Duration
	Async        bool
}

// messageWriter часть kafka.Writer, нужная publisher'у
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события бронирований в Kafka.
// Ключ сообщения - название площадки, чтобы события одной площадки шли в одну партицию по порядку.
type KafkaPublisher struct {
	writer messageWriter
	source string
	logger Logger
	mu     sync.RWMutex
	closed bool
}

// NewKafkaPublisher создает publisher поверх kafka.Writer
func NewKafkaPublisher(cfg KafkaConfig, logger Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.RequireAcks),
		Compression:  compression(cfg.Compression),
		MaxAttempts:  cfg.MaxAttempts,
		BatchTimeout: cfg.BatchTimeout,
		Async:        cfg.Async,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger:  kafka.LoggerFunc(func(msg string, args ...any) { logger.Error("kafka: "+msg, args...) }),
	}

	return newKafkaPublisher(writer, cfg.Source, logger), nil
}

func newKafkaPublisher(writer messageWriter, source string, logger Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		source: source,
		logger: logger,
	}
}

func requiredAcks(acks int) kafka.RequiredAcks {
	switch acks {
	case 0:
		return kafka.RequireNone
	case 1:
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}

func compression(name string) compress.Compression {
	switch name {
	case "gzip":
		return compress.Gzip
	case "lz4":
		return compress.Lz4
	case "zstd":
		return compress.Zstd
	case "none":
		return compress.None
	default:
		return compress.Snappy
	}
}

// PublishBookingCreated публикует событие booking.created
func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, reservation *domain.Reservation) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	event := NewBookingCreatedEvent(reservation)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeEvent, err)
	}

	msg := kafka.Message{
		Key:   []byte(reservation.Facility),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.EventID)},
			{Key: HeaderEventType, Value: []byte(EventTypeBookingCreated)},
			{Key: HeaderSource, Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: reservation_id=%s: %v", ErrWriteMessage, reservation.ID, err)
	}

	p.logger.Debug("events: published %s reservation_id=%s facility=%s",
		EventTypeBookingCreated, reservation.ID, reservation.Facility)
	return nil
}

// Close закрывает writer; повторный вызов безопасен
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
