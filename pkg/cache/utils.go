package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// GenerateKey creates a cache key with prefix and ID.
func GenerateKey(prefix string, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// HashKey generates MD5 hash of a key. Used for free-form text keys
// (e.g. geocoding queries) to keep key length bounded.
func HashKey(key string) string {
	hasher := md5.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}
