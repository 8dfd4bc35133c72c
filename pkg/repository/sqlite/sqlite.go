package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"

	"github.com/quantum-travel/quantumchat/pkg/domain/interfaces"
)

// ErrNotFound is returned when a referenced entity does not exist
var ErrNotFound = errors.New("not found")

// Repository is the SQLite-backed repository. Conversations survive process
// restarts, unlike the memory backend.
type Repository struct {
	db           *sql.DB
	conversation *conversationRepository
}

var _ interfaces.Repository = &Repository{}

// New opens or creates a SQLite database at the given path
func New(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("dir", dir))
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", dbPath))
	}

	r := &Repository{
		db:           db,
		conversation: &conversationRepository{db: db},
	}

	if err := r.migrate(); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to migrate schema", goerr.V("path", dbPath))
	}

	return r, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversations (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id              TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(id),
		role            TEXT NOT NULL,
		content         TEXT NOT NULL,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id);
	`
	if _, err := r.db.Exec(schema); err != nil {
		return goerr.Wrap(err, "failed to create tables")
	}
	return nil
}

func (r *Repository) Conversation() interfaces.ConversationRepository {
	return r.conversation
}

func (r *Repository) Close() error {
	if err := r.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close database")
	}
	return nil
}
