package pgx

import (
	"context"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

func (s *CaseDBStorage) GetRelationships(ctx context.Context, folderID int64) ([]common.RelationshipRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT public_id, from_entity, to_entity, type, strength, description
		FROM relationships
		WHERE folder_id = $1
		ORDER BY created_at`,
		folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}
	defer rows.Close()

	relationships := make([]common.RelationshipRecord, 0)
	for rows.Next() {
		var relationship common.RelationshipRecord
		if err := rows.Scan(
			&relationship.ID, &relationship.FromEntity, &relationship.ToEntity,
			&relationship.Type, &relationship.Strength, &relationship.Description,
		); err != nil {
			return nil, err
		}
		relationships = append(relationships, relationship)
	}
	return relationships, rows.Err()
}

func (s *CaseDBStorage) CreateRelationship(ctx context.Context, folderID int64, relationship common.RelationshipRecord) (common.RelationshipRecord, error) {
	// Both endpoints must live in the same folder; the analysis engine
	// treats a dangling endpoint as fatal, so reject it at write time.
	for _, endpoint := range []string{relationship.FromEntity, relationship.ToEntity} {
		entityFolder, err := s.entityFolderID(ctx, endpoint)
		if err != nil {
			return common.RelationshipRecord{}, fmt.Errorf("unknown entity %q: %w", endpoint, err)
		}
		if entityFolder != folderID {
			return common.RelationshipRecord{}, fmt.Errorf("entity %q belongs to another folder", endpoint)
		}
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return common.RelationshipRecord{}, err
	}

	if relationship.Strength == "" {
		relationship.Strength = common.StrengthMedium
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO relationships (public_id, folder_id, from_entity, to_entity, type, strength, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING public_id, from_entity, to_entity, type, strength, description`,
		publicID, folderID, relationship.FromEntity, relationship.ToEntity,
		relationship.Type, relationship.Strength, relationship.Description,
	).Scan(
		&relationship.ID, &relationship.FromEntity, &relationship.ToEntity,
		&relationship.Type, &relationship.Strength, &relationship.Description,
	)
	if err != nil {
		return common.RelationshipRecord{}, fmt.Errorf("failed to create relationship: %w", err)
	}
	return relationship, nil
}

func (s *CaseDBStorage) DeleteRelationship(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM relationships WHERE public_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete relationship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
