package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// CookieDriver keeps values in a signed and encrypted gorilla session cookie.
type CookieDriver struct {
	store *sessions.CookieStore
	name  string
}

// NewCookieDriver creates a CookieDriver. An empty secret generates random
// keys, so sessions do not survive a restart.
func NewCookieDriver(name, secret string, ttl time.Duration, secure bool) (*CookieDriver, error) {
	var hashKey, blockKey []byte
	if secret == "" {
		hashKey = securecookie.GenerateRandomKey(64)
		blockKey = securecookie.GenerateRandomKey(32)
	} else {
		var err error
		hashKey, blockKey, err = deriveKeys(secret, name)
		if err != nil {
			return nil, err
		}
	}
	if hashKey == nil || blockKey == nil {
		return nil, fmt.Errorf("generate cookie keys for %s", name)
	}

	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(store.Options.MaxAge)

	return &CookieDriver{store: store, name: name}, nil
}

// Open implements Driver.
func (d *CookieDriver) Open(w http.ResponseWriter, r *http.Request) Storage {
	return &cookieStorage{d: d, w: w, r: r}
}

type cookieStorage struct {
	d *CookieDriver
	w http.ResponseWriter
	r *http.Request
}

// session never fails: a cookie that no longer decodes (rotated secret,
// tampering) yields a fresh, empty session.
func (s *cookieStorage) session() *sessions.Session {
	sess, _ := s.d.store.Get(s.r, s.d.name)
	return sess
}

func (s *cookieStorage) Get(key string) (string, bool) {
	v, ok := s.session().Values[key].(string)
	return v, ok
}

func (s *cookieStorage) Set(key, value string) error {
	sess := s.session()
	sess.Values[key] = value
	sess.Options.MaxAge = s.d.store.Options.MaxAge
	return sess.Save(s.r, s.w)
}

func (s *cookieStorage) Remove(key string) error {
	sess := s.session()
	delete(sess.Values, key)
	if len(sess.Values) == 0 {
		sess.Options.MaxAge = -1
	}
	return sess.Save(s.r, s.w)
}
