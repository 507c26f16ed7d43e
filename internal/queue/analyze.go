package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arclight-labs/casefile/backend/internal/util"
	"github.com/arclight-labs/casefile/backend/pkg/analysis"
	"github.com/arclight-labs/casefile/backend/pkg/common"
	"github.com/arclight-labs/casefile/backend/pkg/leaselock"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

// fetchRetries bounds the in-place retries for loading folder data
// before the message goes back through the queue's retry topology.
const fetchRetries = 3

// AnalysisJobMsg is the payload published to the analysis queue.
type AnalysisJobMsg struct {
	FolderID      int64  `json:"folder_id"`
	CorrelationID string `json:"correlation_id"`
}

// ProcessAnalysisMessage runs a full graph analysis for the folder named
// in the message and stores the serialized result. The folder lease
// keeps a second worker from running the same folder concurrently; a
// held lease is not an error, the other worker's result will be at
// least as fresh.
func ProcessAnalysisMessage(
	ctx context.Context,
	st store.CaseStorage,
	locker *leaselock.Locker,
	msgBody string,
) error {
	var msg AnalysisJobMsg
	if err := json.Unmarshal([]byte(msgBody), &msg); err != nil {
		return fmt.Errorf("failed to unmarshal analysis job: %w", err)
	}
	if msg.FolderID == 0 {
		return errors.New("analysis job has no folder id")
	}

	err := locker.WithFolderLease(ctx, msg.FolderID, func(ctx context.Context) error {
		return runAnalysis(ctx, st, msg)
	})
	if errors.Is(err, leaselock.ErrHeld) {
		logger.Info("[Queue] Folder already being analyzed, skipping", "folder_id", msg.FolderID)
		return nil
	}
	return err
}

func runAnalysis(ctx context.Context, st store.CaseStorage, msg AnalysisJobMsg) error {
	var (
		entities      []common.EntityRecord
		relationships []common.RelationshipRecord
	)

	// Transient fetch failures retry in place; a cancelled context does
	// not.
	eg, gCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		entities, err = util.RetryWithContext(gCtx, fetchRetries, func(ctx context.Context) ([]common.EntityRecord, error) {
			return st.GetEntities(ctx, msg.FolderID)
		})
		return err
	})
	eg.Go(func() error {
		var err error
		relationships, err = util.RetryWithContext(gCtx, fetchRetries, func(ctx context.Context) ([]common.RelationshipRecord, error) {
			return st.GetRelationships(ctx, msg.FolderID)
		})
		return err
	})
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("failed to load folder %d: %w", msg.FolderID, err)
	}

	result, err := analysis.Analyze(entities, relationships)
	if err != nil {
		return fmt.Errorf("analysis failed for folder %d: %w", msg.FolderID, err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	if err := st.SaveAnalysis(ctx, msg.FolderID, msg.CorrelationID, raw); err != nil {
		return err
	}

	logger.Info(
		"[Queue] Analysis complete",
		"folder_id", msg.FolderID,
		"correlation_id", msg.CorrelationID,
		"nodes", result.BasicMetrics.NodeCount,
		"edges", result.BasicMetrics.EdgeCount,
		"health", result.Health.Score,
	)
	return nil
}
