package session

import (
	"encoding/gob"
	"net/http"
)

// Flash levels map to toast colors.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Level   string
	Title   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Flasher queues notifications in their own gorilla session cookie,
// independent of the driver holding the user session.
type Flasher struct {
	cookies *CookieDriver
}

// NewFlasher creates a Flasher on top of a cookie driver.
func NewFlasher(cookies *CookieDriver) *Flasher {
	return &Flasher{cookies: cookies}
}

// Add queues a notification.
func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, flash Flash) {
	sess, _ := f.cookies.store.Get(r, f.cookies.name)
	sess.AddFlash(flash)
	_ = sess.Save(r, w)
}

// Pop returns and clears the queued notifications.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	sess, _ := f.cookies.store.Get(r, f.cookies.name)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if fl, ok := v.(Flash); ok {
			flashes = append(flashes, fl)
		}
	}
	return flashes
}
