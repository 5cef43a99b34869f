package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/lovespark/internal/db"
)

// SQLStore keeps records in the db.Record table.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore wraps an opened and migrated connection.
func NewSQLStore(database *gorm.DB) *SQLStore {
	return &SQLStore{db: database}
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	return (&sqlTx{db: s.db.WithContext(ctx)}).Get(key, dst)
}

func (s *SQLStore) Set(ctx context.Context, key string, value any) error {
	return (&sqlTx{db: s.db.WithContext(ctx)}).Set(key, value)
}

func (s *SQLStore) Remove(ctx context.Context, keys ...string) error {
	return (&sqlTx{db: s.db.WithContext(ctx)}).Remove(keys...)
}

// Update runs fn in a database transaction. The sentinel rows of keys are
// locked first, in key order, so two transactions over the same keys run
// one after the other even when the records are still missing. Rows read
// inside fn are also locked FOR UPDATE. sqlite serializes writers itself
// and takes neither lock.
func (s *SQLStore) Update(ctx context.Context, keys []string, fn func(tx Tx) error) error {
	lock := s.db.Dialector.Name() != "sqlite"
	return s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		if err := lockKeys(gtx, keys, lock); err != nil {
			return err
		}
		return fn(&sqlTx{db: gtx, lock: lock})
	})
}

// lockKeys creates any missing sentinel rows for keys and, when lock is
// set, locks them FOR UPDATE.
func lockKeys(gtx *gorm.DB, keys []string, lock bool) error {
	sorted := slices.Compact(slices.Sorted(slices.Values(keys)))
	if len(sorted) == 0 {
		return nil
	}

	rows := make([]db.RecordLock, len(sorted))
	for i, k := range sorted {
		rows[i] = db.RecordLock{Key: k}
	}
	if err := gtx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("sql lock rows: %w", err)
	}
	if !lock {
		return nil
	}

	var locked []db.RecordLock
	err := gtx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("lock_key IN ?", sorted).
		Order("lock_key").
		Find(&locked).Error
	if err != nil {
		return fmt.Errorf("sql lock keys: %w", err)
	}
	return nil
}

type sqlTx struct {
	db   *gorm.DB
	lock bool
}

func (t *sqlTx) Get(key string, dst any) (bool, error) {
	q := t.db
	if t.lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var rec db.Record
	err := q.Where("record_key = ?", key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("sql get %s: %w", key, err)
	}
	return true, decode(key, rec.Value, dst)
}

// Set inserts or overwrites the row for key.
func (t *sqlTx) Set(key string, value any) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}
	rec := db.Record{Key: key, Value: data}
	return t.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"record_value", "updated_at"}),
		}).
		Create(&rec).Error
}

func (t *sqlTx) Remove(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return t.db.Where("record_key IN ?", keys).Delete(&db.Record{}).Error
}
