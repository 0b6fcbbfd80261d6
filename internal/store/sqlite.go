package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/teamcutter/brewer/internal/domain"
)

// The store keeps exactly two values: the last persisted catalog and
// the time it was written. Both live in one kv table split into
// logical buckets so either can be read on its own.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
    bucket TEXT NOT NULL,
    key    TEXT NOT NULL,
    value  BLOB NOT NULL,
    PRIMARY KEY (bucket, key)
);
`

const (
	metaBucket  = "meta"
	stateBucket = "state"

	lastUpdateKey = "last-update"
	stateKey      = "state"
)

// Store is a durable home for one catalog snapshot. Values are CBOR;
// the snapshot is zstd-compressed since a full catalog runs to
// several megabytes.
type Store struct {
	mu  sync.Mutex
	db  *sql.DB
	em  cbor.EncMode
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, em: em, enc: enc, dec: dec}, nil
}

// LastUpdate reports when SetState last succeeded. The bool is false
// if no snapshot has ever been written; that is not an error.
func (s *Store) LastUpdate() (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.get(metaBucket, lastUpdateKey)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading last update: %w", err)
	}

	var t time.Time
	if err := cbor.Unmarshal(data, &t); err != nil {
		return time.Time{}, false, fmt.Errorf("decoding last update: %w", err)
	}

	return t.UTC(), true, nil
}

// State returns the persisted catalog, or nil if none has ever been
// written. Bytes that no longer decode are an error, never "absent".
func (s *Store) State() (*domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.get(stateBucket, stateKey)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}

	raw, err := s.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing state: %w", err)
	}

	var catalog domain.Catalog
	if err := cbor.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}

	return &catalog, nil
}

// SetState replaces the persisted catalog and stamps the current UTC
// time, both in one transaction.
func (s *Store) SetState(catalog *domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.em.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	data := s.enc.EncodeAll(raw, nil)

	stamp, err := s.em.Marshal(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("encoding timestamp: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := put(tx, stateBucket, stateKey, data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	if err := put(tx, metaBucket, lastUpdateKey, stamp); err != nil {
		return fmt.Errorf("writing last update: %w", err)
	}

	return tx.Commit()
}

func (s *Store) get(bucket, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE bucket = ? AND key = ?", bucket, key).Scan(&data)
	return data, err
}

func put(tx *sql.Tx, bucket, key string, value []byte) error {
	_, err := tx.Exec("INSERT OR REPLACE INTO kv (bucket, key, value) VALUES (?, ?, ?)", bucket, key, value)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
