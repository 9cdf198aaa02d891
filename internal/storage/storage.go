package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-logr/logr"
	"github.com/klauspost/compress/zstd"

	"github.com/hailam/bbtables/internal/tables"
)

// Storage key prefixes
const (
	prefixTable = "table/"
	prefixMeta  = "meta/"
)

var (
	// ErrNoSnapshot is returned when a table has never been saved.
	ErrNoSnapshot = errors.New("storage: no snapshot")
	// ErrCorrupt is returned when a stored payload does not match its fingerprint.
	ErrCorrupt = errors.New("storage: corrupt snapshot")
)

// Meta describes a stored table.
type Meta struct {
	Name        string    `json:"name"`
	Shape       string    `json:"shape"`
	Count       int       `json:"count"`
	Fingerprint uint64    `json:"fingerprint"`
	Size        int       `json:"size"`
	SavedAt     time.Time `json:"saved_at"`
}

// Snapshot is a stored table.
type Snapshot struct {
	Meta   Meta
	Values []uint64
}

// Change describes how a freshly generated table differs from its snapshot.
type Change struct {
	Name     string
	New      bool  // no snapshot existed
	Removed  bool  // snapshot exists but the table is no longer generated
	Reshaped bool  // entry count differs
	Indexes  []int // changed entries when the shape is unchanged
}

// Storage wraps BadgerDB for snapshot storage.
type Storage struct {
	db  *badger.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
	log logr.Logger
}

// Open opens the snapshot database in dir, or in the platform data directory
// when dir is empty.
func Open(dir string, log logr.Logger) (*Storage, error) {
	if dir == "" {
		var err error
		if dir, err = GetDatabaseDir(); err != nil {
			return nil, err
		}
	}
	log.V(1).Info("opening snapshot store", "dir", dir)
	return open(badger.DefaultOptions(dir), log)
}

// OpenInMemory opens a snapshot database that lives only in memory.
func OpenInMemory(log logr.Logger) (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), log)
}

func open(opts badger.Options, log logr.Logger) (*Storage, error) {
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &Storage{db: db, enc: enc, dec: dec, log: log}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.enc != nil {
		s.enc.Close()
	}
	if s.dec != nil {
		s.dec.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Fingerprint hashes table values in their serialized form.
func Fingerprint(values []uint64) uint64 {
	return xxhash.Sum64(encodeValues(values))
}

// Save stores every table of the catalog in one transaction.
func (s *Storage) Save(cat *tables.Catalog) error {
	now := time.Now().UTC()

	return s.db.Update(func(txn *badger.Txn) error {
		for _, n := range cat.Tables() {
			raw := encodeValues(n.Values())
			payload := s.enc.EncodeAll(raw, nil)

			meta, err := json.Marshal(Meta{
				Name:        n.Name,
				Shape:       n.Shape.String(),
				Count:       n.Len(),
				Fingerprint: xxhash.Sum64(raw),
				Size:        len(payload),
				SavedAt:     now,
			})
			if err != nil {
				return err
			}

			if err := txn.Set([]byte(prefixTable+n.Name), payload); err != nil {
				return fmt.Errorf("save %s: %w", n.Name, err)
			}
			if err := txn.Set([]byte(prefixMeta+n.Name), meta); err != nil {
				return fmt.Errorf("save %s meta: %w", n.Name, err)
			}
			s.log.V(1).Info("saved table", "name", n.Name, "bytes", len(payload))
		}
		return nil
	})
}

// Load returns the stored snapshot of a table.
func (s *Storage) Load(name string) (*Snapshot, error) {
	snap := &Snapshot{}

	err := s.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, prefixMeta+name, &snap.Meta); err != nil {
			return err
		}

		item, err := txn.Get([]byte(prefixTable + name))
		if err != nil {
			return err
		}
		payload, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		raw, err := s.dec.DecodeAll(payload, nil)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
		}
		if xxhash.Sum64(raw) != snap.Meta.Fingerprint {
			return fmt.Errorf("%w: %s: fingerprint mismatch", ErrCorrupt, name)
		}
		if snap.Values, err = decodeValues(raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorrupt, name, err)
		}
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, name)
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// List returns the metadata of every stored table, ordered by name.
func (s *Storage) List() ([]Meta, error) {
	var metas []Meta

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(prefixMeta)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m Meta
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return err
			}
			metas = append(metas, m)
		}
		return nil
	})

	return metas, err
}

// Diff compares a freshly generated catalog against the stored snapshots and
// returns one Change per table that differs.
func (s *Storage) Diff(cat *tables.Catalog) ([]Change, error) {
	var changes []Change
	current := make(map[string]bool)

	for _, n := range cat.Tables() {
		current[n.Name] = true

		snap, err := s.Load(n.Name)
		if errors.Is(err, ErrNoSnapshot) {
			changes = append(changes, Change{Name: n.Name, New: true})
			continue
		}
		if err != nil {
			return nil, err
		}

		vals := n.Values()
		if len(vals) != len(snap.Values) {
			changes = append(changes, Change{Name: n.Name, Reshaped: true})
			continue
		}

		var idx []int
		for i := range vals {
			if vals[i] != snap.Values[i] {
				idx = append(idx, i)
			}
		}
		if len(idx) > 0 {
			changes = append(changes, Change{Name: n.Name, Indexes: idx})
		}
	}

	stored, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, m := range stored {
		if !current[m.Name] {
			changes = append(changes, Change{Name: m.Name, Removed: true})
		}
	}

	return changes, nil
}

// Delete removes a stored table.
func (s *Storage) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(prefixTable + name)); err != nil {
			return err
		}
		return txn.Delete([]byte(prefixMeta + name))
	})
}

func getJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func encodeValues(values []uint64) []byte {
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, v)
	}
	return buf
}

func decodeValues(raw []byte) ([]uint64, error) {
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of 8", len(raw))
	}
	values := make([]uint64, len(raw)/8)
	for i := range values {
		values[i] = binary.LittleEndian.Uint64(raw[i*8:])
	}
	return values, nil
}
