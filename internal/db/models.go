package db

import (
	"time"
)

// Record is one key-value entry of the sql store backend.
//
// Primary key: record_key
//   - One row per store key; writes are upserts (overwrite guarantee).
//
// Fields:
//   - Key: store key, e.g. "matches_42".
//   - Value: JSON document, opaque to the database.
//   - CreatedAt: When the key was first written.
//   - UpdatedAt: When the key was last overwritten.
//
// Column names avoid "key"/"value", which are reserved words in MySQL.
type Record struct {
	Key       string    `gorm:"column:record_key;primaryKey;size:191"`
	Value     []byte    `gorm:"column:record_value;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// RecordLock is a sentinel row per store key. SQL transactions lock the
// rows of the keys they declare, which serializes them even while the
// records themselves do not exist yet. Rows are created on first use and
// never deleted.
type RecordLock struct {
	Key string `gorm:"column:lock_key;primaryKey;size:191"`
}
