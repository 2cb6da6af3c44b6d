package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_booking/internal/adapter/cache"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports/mocks"
)

const ttl = 10 * time.Minute

func sampleRoom() *domain.Room {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Room{ID: 4, Name: "101", Capacity: 3, HotelID: 1, CreatedAt: ts, UpdatedAt: ts}
}

func TestRoomCache_Miss_LoadsAndStores(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	mockRoomRepo := mocks.NewRoomRepository(t)
	ctx := context.Background()
	room := sampleRoom()

	payload, err := json.Marshal(room)
	require.NoError(t, err)

	mockRedis.ExpectGet("room:4").RedisNil()
	mockRoomRepo.On("FindByID", ctx, int64(4)).Return(room, nil)
	mockRedis.ExpectSet("room:4", payload, ttl).SetVal("OK")

	rc := cache.NewRoomCache(db, mockRoomRepo, ttl, zerolog.Nop())
	got, err := rc.FindByID(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, room, got)

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRoomCache_Hit_SkipsRepository(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	mockRoomRepo := mocks.NewRoomRepository(t)
	room := sampleRoom()

	payload, err := json.Marshal(room)
	require.NoError(t, err)
	mockRedis.ExpectGet("room:4").SetVal(string(payload))

	rc := cache.NewRoomCache(db, mockRoomRepo, ttl, zerolog.Nop())
	got, err := rc.FindByID(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, room, got)
	mockRoomRepo.AssertNotCalled(t, "FindByID", context.Background(), int64(4))
}

func TestRoomCache_RedisDown_FallsBack(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	mockRoomRepo := mocks.NewRoomRepository(t)
	ctx := context.Background()
	room := sampleRoom()

	payload, err := json.Marshal(room)
	require.NoError(t, err)

	mockRedis.ExpectGet("room:4").SetErr(errors.New("connection refused"))
	mockRoomRepo.On("FindByID", ctx, int64(4)).Return(room, nil)
	mockRedis.ExpectSet("room:4", payload, ttl).SetErr(errors.New("connection refused"))

	rc := cache.NewRoomCache(db, mockRoomRepo, ttl, zerolog.Nop())
	got, err := rc.FindByID(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestRoomCache_MissingRoomIsNotCached(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	mockRoomRepo := mocks.NewRoomRepository(t)
	ctx := context.Background()

	mockRedis.ExpectGet("room:9").RedisNil()
	mockRoomRepo.On("FindByID", ctx, int64(9)).Return(nil, nil)

	rc := cache.NewRoomCache(db, mockRoomRepo, ttl, zerolog.Nop())
	got, err := rc.FindByID(ctx, 9)

	require.NoError(t, err)
	assert.Nil(t, got)

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRoomKey(t *testing.T) {
	assert.Equal(t, "room:12", cache.RoomKey(12))
}
