package bidstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fystack/builder-client/pkg/builder"
)

var ErrChainIDEmpty = errors.New("chain id is empty")

// Entry is one submitted bid and, when the service accepted it, its
// acknowledgement. Error holds the failure text otherwise.
type Entry struct {
	ChainID     string          `json:"chain_id"`
	Height      uint64          `json:"height"`
	Kind        builder.BidKind `json:"kind"`
	Txs         [][]byte        `json:"txs"`
	TxHashes    []string        `json:"tx_hashes,omitempty"`
	Error       string          `json:"error,omitempty"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// Store is an append-only journal of bids kept in badger, keyed by
// prefix/chain/height/submission time so a slot's entries list in order.
type Store struct {
	db     *badger.DB
	prefix string
	seq    atomic.Uint64
}

type Options struct {
	Directory string
	Prefix    string
	InMemory  bool
}

func Open(opts Options) (*Store, error) {
	bopts := badger.DefaultOptions(opts.Directory).WithLogger(nil)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open bid journal: %w", err)
	}
	return &Store{db: db, prefix: strings.TrimSuffix(opts.Prefix, "/")}, nil
}

func (s *Store) slotPrefix(chainID string, height uint64) string {
	p := fmt.Sprintf("%s/%020d/", chainID, height)
	if s.prefix != "" {
		return s.prefix + "/" + p
	}
	return p
}

// Put appends e. A zero SubmittedAt is set to now.
func (s *Store) Put(e Entry) error {
	if e.ChainID == "" {
		return ErrChainIDEmpty
	}
	if e.SubmittedAt.IsZero() {
		e.SubmittedAt = time.Now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	key := fmt.Sprintf("%s%020d-%06d", s.slotPrefix(e.ChainID, e.Height), e.SubmittedAt.UnixNano(), s.seq.Add(1)%1_000_000)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// List returns the entries for a slot, oldest first.
func (s *Store) List(chainID string, height uint64) ([]Entry, error) {
	if chainID == "" {
		return nil, ErrChainIDEmpty
	}
	prefix := []byte(s.slotPrefix(chainID, height))

	var entries []Entry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var e Entry
				if err := json.Unmarshal(val, &e); err != nil {
					return fmt.Errorf("decode journal entry %s: %w", it.Item().Key(), err)
				}
				entries = append(entries, e)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return entries, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
