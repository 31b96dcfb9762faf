package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/projetoguri/sgpg/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisDriver keeps values in Redis; the browser only holds a random id.
type RedisDriver struct {
	rdb  *redis.Client
	ttl  time.Duration
	opts cookieOptions
	log  zerolog.Logger
}

// NewRedisDriver creates a RedisDriver on an already connected client.
func NewRedisDriver(rdb *redis.Client, ttl time.Duration, secure bool, log zerolog.Logger) *RedisDriver {
	return &RedisDriver{
		rdb:  rdb,
		ttl:  ttl,
		opts: cookieOptions{maxAge: int(ttl.Seconds()), secure: secure},
		log:  log.With().Str("component", "redis_session").Logger(),
	}
}

// Open implements Driver.
func (d *RedisDriver) Open(w http.ResponseWriter, r *http.Request) Storage {
	s := &redisStorage{d: d, w: w, r: r}
	if c, err := r.Cookie(config.StorageKey.SessionID); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			s.sid = c.Value
		}
	}
	return s
}

type redisStorage struct {
	d   *RedisDriver
	w   http.ResponseWriter
	r   *http.Request
	sid string
}

func (s *redisStorage) Get(key string) (string, bool) {
	if s.sid == "" {
		return "", false
	}
	v, err := s.d.rdb.Get(s.r.Context(), config.StorageKey.RedisSessionKey(s.sid, key)).Result()
	if err != nil {
		// An outage reads as absent too, which signs the browser out.
		if !errors.Is(err, redis.Nil) {
			s.d.log.Error().Err(err).Str("key", key).Msg("Session storage unavailable")
		}
		return "", false
	}
	return v, true
}

func (s *redisStorage) Set(key, value string) error {
	if s.sid == "" {
		s.sid = uuid.New().String()
	}
	redisKey := config.StorageKey.RedisSessionKey(s.sid, key)
	if err := s.d.rdb.Set(s.r.Context(), redisKey, value, s.d.ttl).Err(); err != nil {
		return fmt.Errorf("store session value: %w", err)
	}
	http.SetCookie(s.w, s.d.opts.cookie(config.StorageKey.SessionID, s.sid))
	return nil
}

func (s *redisStorage) Remove(key string) error {
	if s.sid == "" {
		return nil
	}
	err := s.d.rdb.Del(s.r.Context(), config.StorageKey.RedisSessionKey(s.sid, key)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("remove session value: %w", err)
	}
	http.SetCookie(s.w, s.d.opts.expired(config.StorageKey.SessionID))
	return nil
}
