package negamax

import (
	"math"
	"sync/atomic"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

const (
	TTExact = 0x01
	TTLower = 0x02
	TTUpper = 0x03
)

// Rough per-entry footprint of a map[uint64]TableEntry, buckets included.
const entrySize = 32

const depthMask = (1 << 6) - 1

// Floor so a degenerate size hint still leaves a usable table.
const minEntries = 1 << 10

type TableEntry struct {
	score int16
	// 2 bits of bound flag, 6 bits of depth (remaining empties; always ≤16).
	flagAndDepth uint8
}

func (t TableEntry) flag() uint8 {
	return t.flagAndDepth >> 6
}

func (t TableEntry) depth() uint8 {
	return t.flagAndDepth & depthMask
}

func (t TableEntry) valid() bool {
	// a table flag is 1, 2, or 3.
	return t.flag() != 0
}

// TranspositionTable caches scores of already-searched positions, keyed by
// the full 64-bit zobrist value. It is single-owner state: one solver
// invocation reads and writes it, so there is no locking. When the map
// outgrows its ceiling it is cleared wholesale rather than evicted, and
// inserts stop a margin below the ceiling so a full table does not trigger
// a clear on every store.
type TranspositionTable struct {
	table      map[uint64]TableEntry
	maxEntries int
	insertCeil int
	created    atomic.Uint64
	lookups    atomic.Uint64
	hits       atomic.Uint64
	clears     atomic.Uint64
}

func (t *TranspositionTable) lookup(zval uint64) TableEntry {
	t.lookups.Add(1)
	entry, ok := t.table[zval]
	if !ok {
		return TableEntry{}
	}
	t.hits.Add(1)
	// assume the same zobrist hash is the same position. this fails
	// very, very rarely. but it could happen.
	return entry
}

func (t *TranspositionTable) store(zval uint64, tentry TableEntry) {
	if len(t.table) > t.maxEntries {
		clear(t.table)
		t.clears.Add(1)
		log.Debug().Int("max-entries", t.maxEntries).Msg("transposition-table-cleared")
	}
	if len(t.table) >= t.insertCeil {
		return
	}
	t.table[zval] = tentry
	t.created.Add(1)
}

// Reset empties the table and sizes it to the given fraction of system
// memory. Called at the start of every solve.
func (t *TranspositionTable) Reset(fractionOfMemory float64) {
	desiredNElems := fractionOfMemory * (float64(memory.TotalMemory()) / float64(entrySize))
	t.setMaxEntries(int(math.Floor(desiredNElems)))
	log.Debug().Int("max-entries", t.maxEntries).
		Uint64("total-system-memory-bytes", memory.TotalMemory()).
		Msg("transposition-table-size")
}

// SetSizeHint bounds the table by an explicit byte budget instead of a
// memory fraction, for callers marshalling a table_size_hint across the
// kernel boundary.
func (t *TranspositionTable) SetSizeHint(bytes int) {
	t.setMaxEntries(bytes / entrySize)
}

func (t *TranspositionTable) setMaxEntries(n int) {
	if n < minEntries {
		n = minEntries
	}
	t.maxEntries = n
	t.insertCeil = n - n/8
	t.table = make(map[uint64]TableEntry)
	t.created.Store(0)
	t.lookups.Store(0)
	t.hits.Store(0)
	t.clears.Store(0)
}
