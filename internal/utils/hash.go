package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hmacPool holds HMAC-SHA256 instances keyed with the server hash key.
// InitHasherPool must run before Hash, HashHex or VerifyHash.
var hmacPool sync.Pool

// InitHasherPool keys every pooled HMAC with hashKey. The server calls it
// once at startup with App.HashKey; the mint integrity middleware then
// signs and verifies bodies through the pool.
func InitHasherPool(hashKey string) {
	key := []byte(hashKey)
	hmacPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
}

// Hash returns the raw HMAC-SHA256 of data under the pooled key.
func Hash(data []byte) []byte {
	mac := hmacPool.Get().(hash.Hash)
	defer hmacPool.Put(mac)

	mac.Reset()
	mac.Write(data)
	return mac.Sum(nil)
}

// HashHex returns the hex-encoded HMAC of data using the pooled key.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// VerifyHash reports whether signature is the hex-encoded HMAC of data
// using the pooled key. The comparison runs in constant time.
func VerifyHash(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(Hash(data), expected)
}

// HashString signs data with hashKey without touching the pool. The client
// uses it to produce the Hash header for mint requests.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
