package session

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/projetoguri/sgpg/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisDriver(t *testing.T, log zerolog.Logger) (*RedisDriver, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisDriver(rdb, 30*time.Minute, false, log), mr
}

func sidCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == config.StorageKey.SessionID {
			return c
		}
	}
	return nil
}

func TestRedisDriver(t *testing.T) {
	d, _ := newRedisDriver(t, zerolog.Nop())
	exerciseDriver(t, d)
}

func TestRedisDriverIssuesSessionID(t *testing.T) {
	d, mr := newRedisDriver(t, zerolog.Nop())

	rec := httptest.NewRecorder()
	st := d.Open(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, ok := st.Get("@SGPG:user")
	require.False(t, ok)
	assert.Nil(t, sidCookie(rec), "reading does not issue an id")

	require.NoError(t, st.Set("@SGPG:user", `{"employee_id":7}`))
	c := sidCookie(rec)
	require.NotNil(t, c)
	_, err := uuid.Parse(c.Value)
	require.NoError(t, err)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, int((30 * time.Minute).Seconds()), c.MaxAge)

	key := config.StorageKey.RedisSessionKey(c.Value, "@SGPG:user")
	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, `{"employee_id":7}`, stored)
	assert.Equal(t, 30*time.Minute, mr.TTL(key))

	mr.FastForward(31 * time.Minute)
	_, ok = d.Open(httptest.NewRecorder(), nextRequest(rec)).Get("@SGPG:user")
	assert.False(t, ok, "value expires with the TTL")
}

func TestRedisDriverRemoveExpiresCookie(t *testing.T) {
	d, mr := newRedisDriver(t, zerolog.Nop())

	rec := httptest.NewRecorder()
	require.NoError(t, d.Open(rec, httptest.NewRequest(http.MethodGet, "/", nil)).Set("k", "v"))
	sid := sidCookie(rec).Value

	rec2 := httptest.NewRecorder()
	require.NoError(t, d.Open(rec2, nextRequest(rec)).Remove("k"))
	c := sidCookie(rec2)
	require.NotNil(t, c)
	assert.Negative(t, c.MaxAge)
	assert.False(t, mr.Exists(config.StorageKey.RedisSessionKey(sid, "k")))
}

func TestRedisDriverIgnoresMalformedSessionID(t *testing.T) {
	d, mr := newRedisDriver(t, zerolog.Nop())
	require.NoError(t, mr.Set(config.StorageKey.RedisSessionKey("../etc", "k"), "v"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: config.StorageKey.SessionID, Value: "../etc"})

	rec := httptest.NewRecorder()
	st := d.Open(rec, req)
	_, ok := st.Get("k")
	assert.False(t, ok)

	require.NoError(t, st.Set("k", "novo"))
	c := sidCookie(rec)
	require.NotNil(t, c)
	assert.NotEqual(t, "../etc", c.Value)
	_, err := uuid.Parse(c.Value)
	assert.NoError(t, err)
}

func TestRedisDriverLogsOutage(t *testing.T) {
	var buf bytes.Buffer
	d, mr := newRedisDriver(t, zerolog.New(&buf))

	rec := httptest.NewRecorder()
	require.NoError(t, d.Open(rec, httptest.NewRequest(http.MethodGet, "/", nil)).Set("k", "v"))

	_, ok := d.Open(httptest.NewRecorder(), nextRequest(rec)).Get("missing")
	assert.False(t, ok)
	assert.Empty(t, buf.String(), "a missing key is not an outage")

	mr.Close()
	_, ok = d.Open(httptest.NewRecorder(), nextRequest(rec)).Get("k")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Session storage unavailable")
}
