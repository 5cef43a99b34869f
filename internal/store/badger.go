package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// BadgerConfig holds configuration for the embedded badger backend.
type BadgerConfig struct {
	// Path is the directory for badger files. Ignored when InMemory is true.
	Path string

	// InMemory disables disk persistence. Used by tests.
	InMemory bool

	// SyncWrites fsyncs every commit, so a Set is durable once it returns.
	SyncWrites bool

	// Logger receives badger's internal logs. Nil silences them.
	Logger *slog.Logger

	// GCInterval is how often the value log is garbage collected.
	// Zero disables GC; it is always disabled in memory.
	GCInterval time.Duration
}

// BadgerStore is a single-process embedded store.
type BadgerStore struct {
	DB *badger.DB

	stopGC chan struct{}
	gcDone chan struct{}
}

// badgerLogger adapts slog.Logger to badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadger opens (creating if needed) a badger database.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	s := &BadgerStore{DB: db}
	if !cfg.InMemory && cfg.GCInterval > 0 {
		s.stopGC = make(chan struct{})
		s.gcDone = make(chan struct{})
		go s.gcLoop(cfg.GCInterval)
	}
	return s, nil
}

func (s *BadgerStore) gcLoop(every time.Duration) {
	defer close(s.gcDone)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			// keep collecting until there is nothing left to rewrite
			for s.DB.RunValueLogGC(0.5) == nil {
			}
		case <-s.stopGC:
			return
		}
	}
}

func (s *BadgerStore) Ping(ctx context.Context) error {
	if s.DB.IsClosed() {
		return errors.New("badger database is closed")
	}
	return ctx.Err()
}

func (s *BadgerStore) Close() error {
	if s.stopGC != nil {
		close(s.stopGC)
		<-s.gcDone
	}
	return s.DB.Close()
}

func (s *BadgerStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var found bool
	err := s.DB.View(func(txn *badger.Txn) error {
		var err error
		found, err = (&badgerTx{txn: txn}).Get(key, dst)
		return err
	})
	return found, err
}

func (s *BadgerStore) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.DB.Update(func(txn *badger.Txn) error {
		return (&badgerTx{txn: txn}).Set(key, value)
	})
}

func (s *BadgerStore) Remove(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.DB.Update(func(txn *badger.Txn) error {
		return (&badgerTx{txn: txn}).Remove(keys...)
	})
}

// Update ignores keys: badger tracks every key read in the txn and
// reports ErrConflict on commit if any of them changed.
func (s *BadgerStore) Update(ctx context.Context, _ []string, fn func(tx Tx) error) error {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.DB.Update(func(txn *badger.Txn) error {
			return fn(&badgerTx{txn: txn})
		})
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		return err
	}
	return ErrConflict
}

type badgerTx struct {
	txn *badger.Txn
}

func (t *badgerTx) Get(key string, dst any) (bool, error) {
	item, err := t.txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("badger get %s: %w", key, err)
	}
	return true, item.Value(func(val []byte) error {
		return decode(key, val, dst)
	})
}

func (t *badgerTx) Set(key string, value any) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}
	return t.txn.Set([]byte(key), data)
}

func (t *badgerTx) Remove(keys ...string) error {
	for _, k := range keys {
		if err := t.txn.Delete([]byte(k)); err != nil {
			return fmt.Errorf("badger delete %s: %w", k, err)
		}
	}
	return nil
}
