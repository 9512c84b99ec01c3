package store

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// documento is one row of the single-table document layout: the four JSON
// collections each occupy one jsonb row keyed by their document name.
type documento struct {
	Clave string `gorm:"primaryKey;column:clave"`
	Valor string `gorm:"type:jsonb;not null;column:valor"`
}

func (documento) TableName() string { return "documentos" }

// PostgresStore keeps every document in a jsonb column. Update maps directly
// onto a database transaction, which is what gives the sale processor its
// all-or-nothing guarantee in production.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects via GORM, tunes the pool, and migrates the
// documentos table.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(&documento{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func getDoc(db *gorm.DB, key string) ([]byte, error) {
	var doc documento
	err := db.First(&doc, "clave = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Valor), nil
}

func setDoc(db *gorm.DB, key string, value []byte) error {
	doc := documento{Clave: key, Valor: string(value)}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor"}),
	}).Create(&doc).Error
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	return getDoc(s.db.WithContext(ctx), key)
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	return setDoc(s.db.WithContext(ctx), key, value)
}

type postgresTx struct {
	tx     *gorm.DB
	staged map[string][]byte
}

func (t *postgresTx) Get(key string) ([]byte, error) {
	if v, ok := t.staged[key]; ok {
		return append([]byte(nil), v...), nil
	}
	return getDoc(t.tx, key)
}

func (t *postgresTx) Set(key string, value []byte) {
	t.staged[key] = append([]byte(nil), value...)
}

func (s *PostgresStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		tx := &postgresTx{tx: dbtx, staged: make(map[string][]byte)}
		if err := fn(tx); err != nil {
			return err
		}
		for key, value := range tx.staged {
			if err := setDoc(dbtx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ Store = (*PostgresStore)(nil)
