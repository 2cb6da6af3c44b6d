package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type recordedPublish struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	published []recordedPublish
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, recordedPublish{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func sampleEvent() domain.BookingEvent {
	return domain.BookingEvent{
		Type:       domain.BookingCreated,
		BookingID:  42,
		UserID:     1,
		RoomID:     4,
		OccurredAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "bookings", log: zerolog.Nop()}

	err := p.Publish(context.Background(), sampleEvent())

	require.NoError(t, err)
	require.Len(t, ch.published, 1)

	got := ch.published[0]
	assert.Equal(t, "bookings", got.exchange)
	assert.Equal(t, "booking.created", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, int64(42), got.msg.Headers["booking_id"])

	_, err = uuid.Parse(got.msg.MessageId)
	assert.NoError(t, err)

	var decoded domain.BookingEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.Equal(t, sampleEvent(), decoded)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &Publisher{ch: ch, exchange: "bookings", log: zerolog.Nop()}

	err := p.Publish(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "publish booking.created")
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, log: zerolog.Nop()}

	p.Close()

	assert.True(t, ch.closed)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), sampleEvent()))
}
