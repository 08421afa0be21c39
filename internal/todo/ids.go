package todo

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator returns a new task identifier on every call.
type IDGenerator func() string

// UUIDs generates random version 4 UUID strings.
func UUIDs() IDGenerator {
	return func() string {
		return uuid.NewString()
	}
}

// SequentialIDs generates strictly increasing IDs: prefix+"1", prefix+"2", ...
func SequentialIDs(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}
