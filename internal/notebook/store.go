// Package notebook is the playground's document store: an ordered
// list of markdown blocks backed by a local sqlite file. It plays the
// role of the note app's document model when the plugin runs outside
// the real host.
package notebook

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Block is one ordered notebook entry
type Block struct {
	ID        string
	Position  int
	Content   string
	CreatedAt time.Time
}

type Store struct {
	db  *sql.DB
	ids *blockIDGen
}

const schema = `
CREATE TABLE IF NOT EXISTS blocks (
	id         TEXT PRIMARY KEY,
	position   INTEGER NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_blocks_position ON blocks(position);
`

// Open opens or creates a notebook database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open notebook: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize notebook schema: %w", err)
	}

	ids, err := newBlockIDGen()
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, ids: ids}, nil
}

// Append adds a block at the end of the notebook
func (s *Store) Append(content string) (*Block, error) {
	var maxPos sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(position) FROM blocks").Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("failed to read block positions: %w", err)
	}

	block := &Block{
		ID:        s.ids.Generate(),
		Position:  int(maxPos.Int64) + 1,
		Content:   content,
		CreatedAt: time.Now(),
	}

	_, err := s.db.Exec(
		"INSERT INTO blocks (id, position, content, created_at) VALUES (?, ?, ?, ?)",
		block.ID, block.Position, block.Content, block.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to append block: %w", err)
	}

	return block, nil
}

// InsertAfter inserts content as a new sibling right after the block
// with afterID. The whole operation is transactional, so a failure
// never leaves the notebook partially shifted.
func (s *Store) InsertAfter(afterID, content string) (*Block, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var afterPos int
	err = tx.QueryRow("SELECT position FROM blocks WHERE id = ?", afterID).Scan(&afterPos)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("block %s not found", afterID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to locate block %s: %w", afterID, err)
	}

	if _, err := tx.Exec("UPDATE blocks SET position = position + 1 WHERE position > ?", afterPos); err != nil {
		return nil, fmt.Errorf("failed to shift blocks: %w", err)
	}

	block := &Block{
		ID:        s.ids.Generate(),
		Position:  afterPos + 1,
		Content:   content,
		CreatedAt: time.Now(),
	}

	_, err = tx.Exec(
		"INSERT INTO blocks (id, position, content, created_at) VALUES (?, ?, ?, ?)",
		block.ID, block.Position, block.Content, block.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert block: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit block insert: %w", err)
	}

	return block, nil
}

// Get returns a block by ID
func (s *Store) Get(id string) (*Block, error) {
	var block Block
	err := s.db.QueryRow(
		"SELECT id, position, content, created_at FROM blocks WHERE id = ?", id,
	).Scan(&block.ID, &block.Position, &block.Content, &block.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("block %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load block %s: %w", id, err)
	}
	return &block, nil
}

// List returns all blocks in document order
func (s *Store) List() ([]*Block, error) {
	rows, err := s.db.Query("SELECT id, position, content, created_at FROM blocks ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*Block
	for rows.Next() {
		var block Block
		if err := rows.Scan(&block.ID, &block.Position, &block.Content, &block.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		blocks = append(blocks, &block)
	}
	return blocks, rows.Err()
}

// Last returns the final block, or nil for an empty notebook
func (s *Store) Last() (*Block, error) {
	var block Block
	err := s.db.QueryRow(
		"SELECT id, position, content, created_at FROM blocks ORDER BY position DESC LIMIT 1",
	).Scan(&block.ID, &block.Position, &block.Content, &block.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last block: %w", err)
	}
	return &block, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
