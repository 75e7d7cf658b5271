package store

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewID produces identifiers unique within the practical lifetime of one
// installation: base-36 epoch millis plus a random hex suffix. There is no
// global sequence counter, so no cross-process coordination is needed.
func NewID() string {
	buf := make([]byte, 4)
	rand.Read(buf)
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + hex.EncodeToString(buf)
}
