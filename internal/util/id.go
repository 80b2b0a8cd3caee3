package util

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// NewUUID generates a random UUIDv4 string. Used as the public identifier
// for every persisted row; the numeric primary key never leaves the process.
func NewUUID() string {
	return uuid.NewString()
}

// NewULID generates a new ULID string, used for per-request correlation IDs.
// ULIDs sort lexicographically by time, which keeps log correlation cheap.
func NewULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
