package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	_ "github.com/mattn/go-sqlite3"

	"github.com/janekbaraniewski/dashplot/internal/series"
)

// Kind tags how a dataset should be plotted.
type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
)

// Dataset is the stored description of one chart payload.
type Dataset struct {
	Name      string
	Kind      Kind
	Unit      string
	CreatedAt time.Time
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: creating DB dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening DB: %w", err)
	}

	store := NewStore(db)
	if err := store.Init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Init(ctx context.Context) error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS datasets (
			name TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			unit TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS points (
			dataset TEXT NOT NULL,
			series_key TEXT NOT NULL,
			series_color TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			value REAL NOT NULL,
			PRIMARY KEY (dataset, series_key, position),
			FOREIGN KEY(dataset) REFERENCES datasets(name) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_points_dataset ON points(dataset, series_key, position);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: init schema: %w", err)
		}
	}
	return nil
}

// SaveDataset replaces a dataset and all its points in one transaction.
func (s *Store) SaveDataset(ctx context.Context, name string, kind Kind, unit string, all []series.Series) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO datasets (name, kind, unit, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET kind = excluded.kind, unit = excluded.unit
	`, name, string(kind), unit, s.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("store: upsert dataset: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM points WHERE dataset = ?`, name); err != nil {
		return fmt.Errorf("store: clear points: %w", err)
	}

	for _, sr := range all {
		for i, d := range sr.Data {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO points (dataset, series_key, series_color, position, label, value)
				VALUES (?, ?, ?, ?, ?, ?)
			`, name, sr.Key, string(sr.Color), i, d.Label, d.Value); err != nil {
				return fmt.Errorf("store: insert point: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit tx: %w", err)
	}
	return nil
}

// LoadDataset reads every series of a dataset back in insertion order.
func (s *Store) LoadDataset(ctx context.Context, name string) ([]series.Series, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT series_key, series_color, label, value
		FROM points WHERE dataset = ?
		ORDER BY series_key, position
	`, name)
	if err != nil {
		return nil, fmt.Errorf("store: query points: %w", err)
	}
	defer rows.Close()

	var out []series.Series
	byKey := map[string]int{}
	for rows.Next() {
		var key, color, label string
		var value float64
		if err := rows.Scan(&key, &color, &label, &value); err != nil {
			return nil, fmt.Errorf("store: scan point: %w", err)
		}
		idx, ok := byKey[key]
		if !ok {
			idx = len(out)
			byKey[key] = idx
			out = append(out, series.Series{Key: key, Color: lipgloss.Color(color)})
		}
		out[idx].Data = append(out[idx].Data, series.Datum{Label: label, Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate points: %w", err)
	}
	return out, nil
}

// ListDatasets returns dataset descriptors ordered by name.
func (s *Store) ListDatasets(ctx context.Context) ([]Dataset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, kind, unit, created_at FROM datasets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: query datasets: %w", err)
	}
	defer rows.Close()

	var out []Dataset
	for rows.Next() {
		var d Dataset
		var kind, created string
		if err := rows.Scan(&d.Name, &kind, &d.Unit, &created); err != nil {
			return nil, fmt.Errorf("store: scan dataset: %w", err)
		}
		d.Kind = Kind(kind)
		d.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate datasets: %w", err)
	}
	return out, nil
}

// Empty reports whether no datasets have been saved yet.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM datasets`).Scan(&n); err != nil {
		return false, fmt.Errorf("store: count datasets: %w", err)
	}
	return n == 0, nil
}

// DeleteDataset removes a dataset and its points. Points are cleared
// explicitly since the foreign key pragma is per connection.
func (s *Store) DeleteDataset(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM points WHERE dataset = ?`, name); err != nil {
		return fmt.Errorf("store: delete points: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("store: delete dataset: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit tx: %w", err)
	}
	return nil
}
