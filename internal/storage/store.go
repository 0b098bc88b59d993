package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/platform"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// ErrNotFound is returned when a training file does not exist
var ErrNotFound = errors.New("training file not found")

const createTableSQL = `CREATE TABLE IF NOT EXISTS gpx_files (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

// Store gives access to the gpx_files table
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the training database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return nil, fmt.Errorf("creating database dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening training db: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating gpx_files table: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// List returns all training files, newest first
func (s *Store) List(ctx context.Context) ([]model.TrainingFile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM gpx_files ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying training files: %w", err)
	}
	defer rows.Close()

	files := []model.TrainingFile{}
	for rows.Next() {
		var f model.TrainingFile
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning training file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating training files: %w", err)
	}
	return files, nil
}

// Get returns the name and contents of one training file
func (s *Store) Get(ctx context.Context, id int64) (*model.TrainingFileData, error) {
	var (
		name string
		data string
	)
	err := s.db.QueryRowContext(ctx, `SELECT name, data FROM gpx_files WHERE id = ?`, id).Scan(&name, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading training file %d: %w", id, err)
	}
	return &model.TrainingFileData{Name: name, Data: []byte(data)}, nil
}

// Save stores a new training file and returns its record
func (s *Store) Save(ctx context.Context, name string, data []byte) (*model.TrainingFile, error) {
	now := s.now()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO gpx_files (name, data, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		name, string(data), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting training file: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}
	return &model.TrainingFile{ID: id, Name: name, CreatedAt: now}, nil
}

// Delete removes a training file
func (s *Store) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM gpx_files WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting training file %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting training file %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
