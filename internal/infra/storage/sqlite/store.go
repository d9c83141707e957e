package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver SQLite

	"github.com/DocFacilBR/doc-scheduler/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store implementa storage.Store sobre um banco SQLite embutido:
// uma tabela chave-valor onde cada linha é uma coleção serializada.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore abre (ou cria) o banco local no diretório de dados.
// Com dataDir vazio usa ~/.docfacil/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolvendo diretório home: %w", err)
		}
		dataDir = filepath.Join(home, ".docfacil", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("criando diretório de dados: %w", err)
	}

	dbPath := filepath.Join(dataDir, "docfacil.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("abrindo banco local: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("criando schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Path devolve o caminho do arquivo do banco.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context, collection string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, collection,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lendo coleção %s: %w", collection, err)
	}
	return data, nil
}

func (s *Store) Save(ctx context.Context, collection string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		collection, data,
	)
	if err != nil {
		return fmt.Errorf("gravando coleção %s: %w", collection, err)
	}
	return nil
}
