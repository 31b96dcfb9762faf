package config

import (
	"fmt"
)

type StorageKeyStruct struct {
	// User is the browser storage key holding the serialized session.
	User string
	// Flash is the cookie name used for one-shot notifications.
	Flash string
	// SessionID is the cookie carrying the Redis session id.
	SessionID string
}

// RedisSessionKey returns the Redis key holding a session's stored values.
func (k *StorageKeyStruct) RedisSessionKey(sid, key string) string {
	return fmt.Sprintf("sgpg:session:%s:%s", sid, key)
}

var StorageKey = &StorageKeyStruct{
	User:      "@SGPG:user",
	Flash:     "sgpg_flash",
	SessionID: "sgpg_sid",
}
