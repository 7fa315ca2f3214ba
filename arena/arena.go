// Package arena keeps converted strings reachable for the remainder of the
// process. It is an append-only pin table with no release API: every pinned
// string is retained forever, so references to its bytes can never dangle.
// The cost is permanent memory growth proportional to the pinned bytes,
// which is the documented trade of the safe converter, not an oversight.
package arena

import (
	"sync"

	"github.com/starudream/staticstr/internal/json"
	"github.com/starudream/staticstr/logger"
)

var global = &table{}

type table struct {
	mu    sync.Mutex
	pins  []string
	count int64
	bytes int64
}

func (t *table) pin(s string) string {
	t.mu.Lock()
	t.pins = append(t.pins, s)
	t.count++
	t.bytes += int64(len(s))
	t.mu.Unlock()
	return s
}

// Pin retains s for the remainder of the process and returns it unchanged.
// Pinning the same content twice retains two entries, never deduplicates.
func Pin(s string) string {
	return global.pin(s)
}

// PinBytes copies b into a fresh immutable string and pins the copy. The
// returned string is independent of b: later mutation or release of b does
// not affect it.
func PinBytes(b []byte) string {
	return Pin(string(b))
}

// PinAll pins a copy of every buffer in order and returns the pinned strings.
func PinAll(bufs [][]byte) []string {
	strs := make([]string, len(bufs))
	var total int64
	for i, b := range bufs {
		strs[i] = Pin(string(b))
		total += int64(len(b))
	}
	logger.Debug().Int("count", len(strs)).Int64("bytes", total).Msg("arena pinned")
	return strs
}

type Stats struct {
	Pins  int64 `json:"pins"`
	Bytes int64 `json:"bytes"`
}

func (s Stats) String() string {
	return json.MustMarshalToString(s)
}

// Snapshot reports how many strings and bytes the arena holds. Both values
// are monotonically non-decreasing over the life of the process.
func Snapshot() Stats {
	global.mu.Lock()
	defer global.mu.Unlock()
	return Stats{Pins: global.count, Bytes: global.bytes}
}
