// Package prefixdb maps numeric phone prefixes to labels such as place
// names or carrier names. An index is built once from a prefix table
// and is immutable and safe for concurrent lookups afterwards.
//
// Keys are integers formed by concatenating a country calling code with
// an area-code or carrier digit string, e.g. 1201 for "+1 201". Two
// encodings exist: direct keeps one label string per key, flyweight
// shares duplicate labels behind a small index table. The builder
// estimates both footprints and keeps the smaller, so tables where many
// prefixes carry the same label (whole provinces, single-carrier
// ranges) do not pay for the duplication.
package prefixdb

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"phonelib/pkg/phonenumber"
)

type storageKind int

const (
	directStorage storageKind = iota
	flyweightStorage
)

func (k storageKind) String() string {
	if k == flyweightStorage {
		return "flyweight"
	}
	return "direct"
}

// DB is an immutable prefix index.
type DB struct {
	kind storageKind
	keys []uint64 // sorted ascending

	// direct
	labels []string

	// flyweight
	labelIndex []uint32
	table      []string

	// distinct key digit-lengths, longest first; lookup probes these.
	lengths []int
}

// Builder accumulates prefix/label pairs and freezes them into a DB.
// Adding the same prefix twice keeps the last label.
type Builder struct {
	entries map[uint64]string
	logger  *slog.Logger
}

// NewBuilder returns an empty builder. A nil logger disables logging.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{entries: make(map[uint64]string), logger: logger}
}

// Add registers one prefix with its label. Prefixes must already carry
// their country calling code, e.g. Add(1201, "New Jersey").
func (b *Builder) Add(prefix uint64, label string) *Builder {
	b.entries[prefix] = label
	return b
}

// Build freezes the accumulated entries, choosing the smaller of the
// two encodings by estimated footprint.
func (b *Builder) Build() (*DB, error) {
	if len(b.entries) == 0 {
		return nil, fmt.Errorf("prefixdb: no entries")
	}

	keys := make([]uint64, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	db := &DB{keys: keys, lengths: keyLengths(keys)}

	distinct := make(map[string]uint32)
	for _, k := range keys {
		label := b.entries[k]
		if _, ok := distinct[label]; !ok {
			distinct[label] = uint32(len(distinct))
		}
	}

	if flyweightFootprint(len(keys), distinct) < directFootprint(keys, b.entries) {
		db.kind = flyweightStorage
		db.table = make([]string, len(distinct))
		for label, i := range distinct {
			db.table[i] = label
		}
		db.labelIndex = make([]uint32, len(keys))
		for i, k := range keys {
			db.labelIndex[i] = distinct[b.entries[k]]
		}
	} else {
		db.labels = make([]string, len(keys))
		for i, k := range keys {
			db.labels[i] = b.entries[k]
		}
	}

	b.logger.Debug("prefix index built",
		slog.Int("entries", len(keys)),
		slog.Int("distinct_labels", len(distinct)),
		slog.String("storage", db.kind.String()))
	return db, nil
}

// Len returns the number of stored prefixes.
func (db *DB) Len() int { return len(db.keys) }

// Lookup resolves a parsed number to the label of the longest stored
// prefix its digits begin with. The probed digit string is the country
// calling code followed by the national significant number, Italian
// leading zeros included; a stored key equal to the whole (short)
// digit string matches exactly.
func (db *DB) Lookup(num phonenumber.PhoneNumber) (string, bool) {
	digits := strconv.Itoa(num.CountryCode) + num.NationalSignificantNumber()
	for _, l := range db.lengths {
		if l > len(digits) {
			continue
		}
		key, err := strconv.ParseUint(digits[:l], 10, 64)
		if err != nil {
			return "", false
		}
		i := sort.Search(len(db.keys), func(i int) bool { return db.keys[i] >= key })
		if i < len(db.keys) && db.keys[i] == key {
			return db.label(i), true
		}
	}
	return "", false
}

// label dispatches on the storage encoding chosen at build time.
func (db *DB) label(i int) string {
	switch db.kind {
	case flyweightStorage:
		return db.table[db.labelIndex[i]]
	default:
		return db.labels[i]
	}
}

func keyLengths(keys []uint64) []int {
	seen := make(map[int]struct{})
	for _, k := range keys {
		seen[len(strconv.FormatUint(k, 10))] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

const stringHeaderSize = 16

// directFootprint estimates bytes for one label string per key.
func directFootprint(keys []uint64, entries map[uint64]string) int {
	size := len(keys) * (8 + stringHeaderSize)
	for _, k := range keys {
		size += len(entries[k])
	}
	return size
}

// flyweightFootprint estimates bytes for shared labels plus a per-key
// index into the label table.
func flyweightFootprint(n int, distinct map[string]uint32) int {
	size := n * (8 + 4)
	for label := range distinct {
		size += stringHeaderSize + len(label)
	}
	return size
}
