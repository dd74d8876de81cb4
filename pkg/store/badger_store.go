package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/rzbill/registry/pkg/log"
	"github.com/rzbill/registry/pkg/types"
)

// Validate that BadgerStore implements the Store interface
var _ Store = &BadgerStore{}

// BadgerStore implements the Store interface on BadgerDB. Keys are the
// apiVersion/kind/name path of the ref; values are the serialized document.
// Badger transactions give the same all-or-nothing guarantee the contract
// requires; failures of the engine itself surface as ErrUnavailable.
type BadgerStore struct {
	db     *badger.DB
	path   string
	logger log.Logger
}

// NewBadgerStore creates a new BadgerDB-backed store.
func NewBadgerStore(logger log.Logger) *BadgerStore {
	if logger == nil {
		logger = log.GetDefaultLogger().WithComponent("store")
	} else {
		logger = logger.WithComponent("store")
	}

	return &BadgerStore{logger: logger}
}

// Open opens the BadgerDB database at path.
func (s *BadgerStore) Open(path string) error {
	s.path = path

	opts := badger.DefaultOptions(path)
	opts.Logger = &badgerLogAdapter{logger: s.logger}

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("open badger db at %s: %w", path, ErrUnavailable)
	}
	s.db = db

	s.logger.Debug("opened badger store", log.Str("path", path))
	return nil
}

// Close closes the BadgerDB database.
func (s *BadgerStore) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close badger db: %w", ErrUnavailable)
	}
	s.db = nil
	return nil
}

// Write stores the resource under its own ref, overwriting any prior value.
func (s *BadgerStore) Write(ctx context.Context, res types.Resource) error {
	ref := res.ResourceRef()

	data, err := json.Marshal(res)
	if err != nil {
		return &SerializationError{Ref: ref, Err: err}
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(MakeKey(ref), data)
	})
	if err != nil {
		s.logger.Error("write failed", log.Stringer("ref", ref), log.Err(err))
		return fmt.Errorf("write %s: %v: %w", ref, err, ErrUnavailable)
	}

	s.logger.Debug("wrote resource", log.Stringer("ref", ref))
	return nil
}

// Get retrieves the resource under ref and decodes it into out.
func (s *BadgerStore) Get(ctx context.Context, ref types.Ref, out interface{}) error {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(MakeKey(ref))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("resource %s: %w", ref, ErrNotFound)
	}
	if err != nil {
		s.logger.Error("get failed", log.Stringer("ref", ref), log.Err(err))
		return fmt.Errorf("get %s: %v: %w", ref, err, ErrUnavailable)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &SerializationError{Ref: ref, Err: err}
	}
	return nil
}

// Delete removes the resource under ref.
func (s *BadgerStore) Delete(ctx context.Context, ref types.Ref) error {
	key := MakeKey(ref)

	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("resource %s: %w", ref, ErrNotFound)
	}
	if err != nil {
		s.logger.Error("delete failed", log.Stringer("ref", ref), log.Err(err))
		return fmt.Errorf("delete %s: %v: %w", ref, err, ErrUnavailable)
	}
	return nil
}

// badgerLogAdapter routes badger's internal logs into the store logger.
type badgerLogAdapter struct {
	logger log.Logger
}

func (a *badgerLogAdapter) Errorf(format string, args ...interface{}) {
	a.logger.Errorf("badger: %s", trimNewline(fmt.Sprintf(format, args...)))
}

func (a *badgerLogAdapter) Warningf(format string, args ...interface{}) {
	a.logger.Warnf("badger: %s", trimNewline(fmt.Sprintf(format, args...)))
}

func (a *badgerLogAdapter) Infof(format string, args ...interface{}) {
	a.logger.Debugf("badger: %s", trimNewline(fmt.Sprintf(format, args...)))
}

func (a *badgerLogAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Debugf("badger: %s", trimNewline(fmt.Sprintf(format, args...)))
}

func trimNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
