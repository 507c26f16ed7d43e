package pgx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

func (s *CaseDBStorage) GetEntities(ctx context.Context, folderID int64) ([]common.EntityRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT public_id, name, type, attributes, x, y, created_at, updated_at
		FROM entities
		WHERE folder_id = $1
		ORDER BY created_at`,
		folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	defer rows.Close()

	entities := make([]common.EntityRecord, 0)
	for rows.Next() {
		var entity common.EntityRecord
		if err := rows.Scan(
			&entity.ID, &entity.Name, &entity.Type, &entity.Attributes,
			&entity.X, &entity.Y, &entity.CreatedAt, &entity.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

func (s *CaseDBStorage) CreateEntity(ctx context.Context, folderID int64, entity common.EntityRecord) (common.EntityRecord, error) {
	publicID, err := gonanoid.New()
	if err != nil {
		return common.EntityRecord{}, err
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO entities (public_id, folder_id, name, type, attributes, x, y)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING public_id, name, type, attributes, x, y, created_at, updated_at`,
		publicID, folderID, entity.Name, entity.Type, entity.Attributes, entity.X, entity.Y,
	).Scan(
		&entity.ID, &entity.Name, &entity.Type, &entity.Attributes,
		&entity.X, &entity.Y, &entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return common.EntityRecord{}, fmt.Errorf("failed to create entity: %w", err)
	}
	return entity, nil
}

func (s *CaseDBStorage) UpdateEntity(ctx context.Context, id string, entity common.EntityRecord) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE entities
		SET name = $2, type = $3, attributes = $4, x = $5, y = $6, updated_at = now()
		WHERE public_id = $1`,
		id, entity.Name, entity.Type, entity.Attributes, entity.X, entity.Y)
	if err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CaseDBStorage) DeleteEntity(ctx context.Context, id string) error {
	// Relationships touching the entity go with it so the folder never
	// holds a dangling edge.
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `
		DELETE FROM relationships
		WHERE from_entity = $1 OR to_entity = $1`,
		id)
	if err != nil {
		return fmt.Errorf("failed to delete entity relationships: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM entities WHERE public_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

// entityFolderID resolves the folder an entity belongs to.
func (s *CaseDBStorage) entityFolderID(ctx context.Context, publicID string) (int64, error) {
	var folderID int64
	err := s.pool.QueryRow(ctx, `SELECT folder_id FROM entities WHERE public_id = $1`, publicID).Scan(&folderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return folderID, err
}
