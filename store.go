package alphatrade

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// Fixed keys the two collections are persisted under.
const (
	assetsKey       = "alphatrade_assets"
	transactionsKey = "alphatrade_transactions"
)

// Store is the ledger's persistence: the asset and trade collections, each
// stored whole under a fixed key in a local SQLite-backed key-value table.
//
// The store assumes a single logical writer per process. There is no
// internal locking beyond what database/sql provides: two upserts in flight
// for the same identity resolve by last-write-wins on whichever completes
// last.
//
// TODO: live mode should sync the collections to a remote store; the local
// database is the only backend for now, in both modes.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenStore opens (or creates) the ledger database at the given path.
func OpenStore(path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{db: db, log: log.With().Str("component", "store").Logger()}
	s.log.Debug().Str("path", path).Msg("ledger store opened")
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get reads the raw value under a key. Absence of the key is not an error.
func (s *Store) get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}
	return value, true, nil
}

// put replaces the whole value under a key in a single statement, so a
// reader never observes a partial write.
func (s *Store) put(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// ListAssets loads the persisted asset collection, or the documented seed
// set when none has been persisted yet. Absence of storage is not an error.
func (s *Store) ListAssets() ([]Asset, error) {
	raw, ok, err := s.get(assetsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedAssets(), nil
	}
	return DecodeAssets(bytes.NewReader(raw))
}

// UpsertAsset inserts or replaces an asset by identity. An existing record
// is replaced in place, keeping its position in the collection; a new one
// is appended. The full collection is persisted after the mutation.
func (s *Store) UpsertAsset(asset Asset) error {
	if err := asset.Validate(); err != nil {
		return fmt.Errorf("invalid asset: %w", err)
	}

	assets, err := s.ListAssets()
	if err != nil {
		return err
	}

	replaced := false
	for i := range assets {
		if assets[i].ID == asset.ID {
			assets[i] = asset
			replaced = true
			break
		}
	}
	if !replaced {
		assets = append(assets, asset)
	}
	s.log.Debug().Str("id", asset.ID).Bool("replaced", replaced).Msg("upsert asset")

	var buf bytes.Buffer
	if err := EncodeAssets(&buf, assets); err != nil {
		return err
	}
	return s.put(assetsKey, buf.Bytes())
}

// ListTransactions loads the persisted trade collection, newest-first, or
// the documented seed history when none has been persisted yet.
func (s *Store) ListTransactions() ([]Transaction, error) {
	raw, ok, err := s.get(transactionsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SeedTransactions(), nil
	}
	return DecodeTransactions(bytes.NewReader(raw))
}

// AppendTransaction prepends a trade to the collection and persists it. The
// store only ever appends: prior records are never edited or removed.
func (s *Store) AppendTransaction(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}

	txs, err := s.ListTransactions()
	if err != nil {
		return err
	}
	txs = append([]Transaction{tx}, txs...)
	s.log.Debug().Str("id", tx.ID).Str("symbol", tx.Symbol).Msg("append transaction")

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, txs); err != nil {
		return err
	}
	return s.put(transactionsKey, buf.Bytes())
}
