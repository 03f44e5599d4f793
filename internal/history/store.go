package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"rimmodlist/internal/config"
)

// Conversion is one journal row describing a processed save file. RMLPath
// and CSVPath are empty when the empty-mod-list skip fired.
type Conversion struct {
	ID          string
	SavePath    string
	GameVersion string
	ModCount    int
	RMLPath     string
	CSVPath     string
	CreatedAt   time.Time
}

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database under the configured
// history directory and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := os.MkdirAll(cfg.History.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.History.Dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the journal database location.
func (s *Store) Path() string {
	return s.path
}

// Record appends one conversion to the journal and returns its assigned id.
func (s *Store) Record(ctx context.Context, conv Conversion) (string, error) {
	id := uuid.NewString()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO conversions (
            id, save_path, game_version, mod_count, rml_path, csv_path, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		conv.SavePath,
		conv.GameVersion,
		conv.ModCount,
		nullableString(conv.RMLPath),
		nullableString(conv.CSVPath),
		createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert conversion: %w", err)
	}
	return id, nil
}

// List returns the most recent conversions, newest first. A limit of zero
// or less falls back to 20 entries.
func (s *Store) List(ctx context.Context, limit int) ([]Conversion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, save_path, game_version, mod_count, rml_path, csv_path, created_at
         FROM conversions
         ORDER BY rowid DESC
         LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	var conversions []Conversion
	for rows.Next() {
		var conv Conversion
		var rmlPath, csvPath sql.NullString
		var createdAt string
		if err := rows.Scan(&conv.ID, &conv.SavePath, &conv.GameVersion, &conv.ModCount, &rmlPath, &csvPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		conv.RMLPath = rmlPath.String
		conv.CSVPath = csvPath.String
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			conv.CreatedAt = parsed
		}
		conversions = append(conversions, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return conversions, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
