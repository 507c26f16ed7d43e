package pgx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arclight-labs/casefile/backend/pkg/common"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

// ErrNotFound aliases store.ErrNotFound for callers holding the
// concrete type.
var ErrNotFound = store.ErrNotFound

// CaseDBStorage implements store.CaseStorage on PostgreSQL via pgx.
type CaseDBStorage struct {
	pool *pgxpool.Pool
}

var _ store.CaseStorage = (*CaseDBStorage)(nil)

// New creates a CaseDBStorage backed by the given pool.
func New(pool *pgxpool.Pool) *CaseDBStorage {
	return &CaseDBStorage{pool: pool}
}

func (s *CaseDBStorage) CreateFolder(ctx context.Context, name, description string) (common.Folder, error) {
	var folder common.Folder
	err := s.pool.QueryRow(ctx, `
		INSERT INTO folders (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at`,
		name, description,
	).Scan(&folder.ID, &folder.Name, &folder.Description, &folder.CreatedAt, &folder.UpdatedAt)
	if err != nil {
		return common.Folder{}, fmt.Errorf("failed to create folder: %w", err)
	}
	return folder, nil
}

func (s *CaseDBStorage) GetFolders(ctx context.Context) ([]common.Folder, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM folders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	folders := make([]common.Folder, 0)
	for rows.Next() {
		var folder common.Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.Description, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, rows.Err()
}

func (s *CaseDBStorage) GetFolder(ctx context.Context, id int64) (common.Folder, error) {
	var folder common.Folder
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM folders
		WHERE id = $1`,
		id,
	).Scan(&folder.ID, &folder.Name, &folder.Description, &folder.CreatedAt, &folder.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.Folder{}, ErrNotFound
	}
	if err != nil {
		return common.Folder{}, fmt.Errorf("failed to get folder: %w", err)
	}
	return folder, nil
}

func (s *CaseDBStorage) UpdateFolder(ctx context.Context, id int64, name, description string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE folders
		SET name = $2, description = $3, updated_at = now()
		WHERE id = $1`,
		id, name, description)
	if err != nil {
		return fmt.Errorf("failed to update folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CaseDBStorage) DeleteFolder(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM folders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
