package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenDriver stores each key as an HS256-signed JWT in its own cookie.
type TokenDriver struct {
	secret []byte
	ttl    time.Duration
	opts   cookieOptions
	now    func() time.Time
}

type valueClaims struct {
	jwt.RegisteredClaims
	Value string `json:"v"`
}

// NewTokenDriver creates a TokenDriver signing with secret.
func NewTokenDriver(secret string, ttl time.Duration, secure bool) (*TokenDriver, error) {
	if secret == "" {
		return nil, errors.New("token session driver requires SESSION_SECRET")
	}
	return &TokenDriver{
		secret: []byte(secret),
		ttl:    ttl,
		opts:   cookieOptions{maxAge: int(ttl.Seconds()), secure: secure},
		now:    time.Now,
	}, nil
}

// Open implements Driver.
func (d *TokenDriver) Open(w http.ResponseWriter, r *http.Request) Storage {
	return &tokenStorage{d: d, w: w, r: r, written: map[string]*string{}}
}

// cookieName maps a storage key to a cookie-safe name.
func cookieName(key string) string {
	r := strings.NewReplacer("@", "", ":", "_")
	return "sgpg_" + strings.ToLower(r.Replace(key))
}

func (d *TokenDriver) sign(key, value string) (string, error) {
	now := d.now()
	claims := valueClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   key,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d.ttl)),
		},
		Value: value,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.secret)
}

func (d *TokenDriver) verify(key, token string) (string, error) {
	claims := &valueClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return d.secret, nil
	}, jwt.WithTimeFunc(d.now), jwt.WithSubject(key))
	if err != nil {
		return "", err
	}
	return claims.Value, nil
}

type tokenStorage struct {
	d *TokenDriver
	w http.ResponseWriter
	r *http.Request
	// written shadows cookies set or removed during this request;
	// a nil entry means removed.
	written map[string]*string
}

func (s *tokenStorage) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	c, err := s.r.Cookie(cookieName(key))
	if err != nil || c.Value == "" {
		return "", false
	}
	v, err := s.d.verify(key, c.Value)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *tokenStorage) Set(key, value string) error {
	token, err := s.d.sign(key, value)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	http.SetCookie(s.w, s.d.opts.cookie(cookieName(key), token))
	s.written[key] = &value
	return nil
}

func (s *tokenStorage) Remove(key string) error {
	http.SetCookie(s.w, s.d.opts.expired(cookieName(key)))
	s.written[key] = nil
	return nil
}
