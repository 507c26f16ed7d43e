package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arclight-labs/casefile/backend/pkg/store"
)

func (s *CaseDBStorage) SaveAnalysis(ctx context.Context, folderID int64, correlationID string, result json.RawMessage) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO analysis_results (folder_id, correlation_id, result)
		VALUES ($1, $2, $3)`,
		folderID, correlationID, result)
	if err != nil {
		return fmt.Errorf("failed to save analysis result: %w", err)
	}

	// Only the latest run per folder is ever served; older rows are
	// kept for a short audit window and pruned here.
	_, err = s.pool.Exec(ctx, `
		DELETE FROM analysis_results
		WHERE folder_id = $1
		  AND id NOT IN (
			SELECT id FROM analysis_results
			WHERE folder_id = $1
			ORDER BY created_at DESC
			LIMIT 5
		)`,
		folderID)
	if err != nil {
		return fmt.Errorf("failed to prune analysis results: %w", err)
	}
	return nil
}

func (s *CaseDBStorage) GetLatestAnalysis(ctx context.Context, folderID int64) (store.AnalysisRecord, error) {
	var record store.AnalysisRecord
	err := s.pool.QueryRow(ctx, `
		SELECT folder_id, correlation_id, result, created_at
		FROM analysis_results
		WHERE folder_id = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		folderID,
	).Scan(&record.FolderID, &record.CorrelationID, &record.Result, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.AnalysisRecord{}, ErrNotFound
	}
	if err != nil {
		return store.AnalysisRecord{}, fmt.Errorf("failed to get analysis result: %w", err)
	}
	return record, nil
}
