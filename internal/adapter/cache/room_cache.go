package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

// RoomCache is a read-through cache in front of a RoomRepository. Rooms are
// static, so entries only expire by TTL. Redis failures fall back to the
// wrapped repository.
type RoomCache struct {
	client redis.Cmdable
	next   ports.RoomRepository
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRoomCache(client redis.Cmdable, next ports.RoomRepository, ttl time.Duration, log zerolog.Logger) *RoomCache {
	return &RoomCache{
		client: client,
		next:   next,
		ttl:    ttl,
		log:    log.With().Str("component", "room_cache").Logger(),
	}
}

func RoomKey(roomID int64) string {
	return fmt.Sprintf("room:%d", roomID)
}

func (c *RoomCache) FindByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	key := RoomKey(roomID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var room domain.Room
		if err := json.Unmarshal(data, &room); err == nil {
			return &room, nil
		}
		c.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	room, err := c.next.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return room, err
	}

	payload, err := json.Marshal(room)
	if err != nil {
		return room, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return room, nil
}
