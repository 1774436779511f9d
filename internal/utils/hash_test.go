// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-custody/models"
)

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

const testHashKey = "test-secret-key"

func TestHash_WithMintRequest(t *testing.T) {
	InitHasherPool(testHashKey)

	body, err := json.Marshal(models.MintFungibleRequest{Amount: 250})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	got := HashHex(body)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("Hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHash_DifferentKeys(t *testing.T) {
	body := []byte(`{"amount":1}`)

	InitHasherPool("key-one")
	hash1 := HashHex(body)

	InitHasherPool("key-two")
	hash2 := HashHex(body)

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same body")
	}
}

func TestVerifyHash(t *testing.T) {
	InitHasherPool(testHashKey)
	body := []byte(`{"item":{"id":3}}`)
	signature := HashHex(body)

	if !VerifyHash(body, signature) {
		t.Error("expected signature to verify")
	}
	if VerifyHash([]byte(`{"item":{"id":4}}`), signature) {
		t.Error("signature must not verify a different body")
	}
	if VerifyHash(body, "not-hex") {
		t.Error("malformed signature must not verify")
	}
	if VerifyHash(body, "") {
		t.Error("empty signature must not verify")
	}
}

func TestHashString_MatchesPool(t *testing.T) {
	InitHasherPool(testHashKey)

	if HashString("owner-secret", testHashKey) != HashHex([]byte("owner-secret")) {
		t.Error("HashString and the pooled hasher must agree for the same key")
	}
}
