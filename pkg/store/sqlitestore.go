package store

import (
	"encoding/json"
	"errors"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow holds one serialized collection per row. The whole-sequence
// blob keeps the Write contract identical to the file backend.
type collectionRow struct {
	Name      string `gorm:"primaryKey;column:name"`
	Data      []byte `gorm:"column:data"`
	UpdatedAt time.Time
}

func (collectionRow) TableName() string { return "collections" }

// SQLiteStore is the alternate backend for installs that prefer a single db
// file over a directory of JSON documents.
type SQLiteStore struct {
	db *gorm.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, &PersistenceError{Op: "read", Collection: path, Err: err}
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, &PersistenceError{Op: "write", Collection: path, Err: err}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Read(collection string, out any) error {
	var row collectionRow
	err := s.db.First(&row, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "read", Collection: collection, Err: err}
	}
	if len(row.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return &PersistenceError{Op: "read", Collection: collection, Err: err}
	}
	return nil
}

func (s *SQLiteStore) Write(collection string, records any) error {
	b, err := json.Marshal(records)
	if err != nil {
		return &PersistenceError{Op: "write", Collection: collection, Err: err}
	}
	row := collectionRow{Name: collection, Data: b, UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return &PersistenceError{Op: "write", Collection: collection, Err: err}
	}
	return nil
}
