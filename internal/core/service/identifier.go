package service

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

// alphabet is the unambiguous symbol set for generated identifiers:
// uppercase letters and digits with the visually confusable I, O, 0 and 1
// removed. 32 symbols.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// trackingPrefix starts every public tracking number.
const trackingPrefix = "SC"

// newTrackingNumber returns a new tracking number: the fixed prefix, the
// current Unix millisecond clock in base 36, and a 10-character random
// suffix. Uniqueness is probabilistic (32^10 suffixes within a single
// millisecond) and is not checked against the store.
func newTrackingNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return trackingPrefix + ts + randomString(10)
}

// newEventID returns an identifier for a ledger entry. It only needs to be
// unique within one shipment's ledger.
func newEventID() string {
	return randomString(12)
}

func randomString(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b) // never fails on supported platforms
	out := make([]byte, n)
	for i, v := range b {
		out[i] = alphabet[int(v)%len(alphabet)]
	}
	return string(out)
}
