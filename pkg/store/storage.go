package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/arclight-labs/casefile/backend/pkg/common"
)

// ErrNotFound is returned when a folder, entity, relationship or
// analysis result does not exist.
var ErrNotFound = errors.New("not found")

// AnalysisRecord is one stored analysis run for a folder.
type AnalysisRecord struct {
	FolderID      int64           `json:"folder_id"`
	CorrelationID string          `json:"correlation_id"`
	Result        json.RawMessage `json:"result"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CaseStorage defines the persistence interface for folders, their
// entities and relationships, and stored analysis results. The analysis
// engine never touches storage directly; the worker fetches records,
// runs the engine, and stores the serialized result here so HTTP
// handlers can serve slices of it without recomputing.
type CaseStorage interface {
	CreateFolder(ctx context.Context, name, description string) (common.Folder, error)
	GetFolders(ctx context.Context) ([]common.Folder, error)
	GetFolder(ctx context.Context, id int64) (common.Folder, error)
	UpdateFolder(ctx context.Context, id int64, name, description string) error
	DeleteFolder(ctx context.Context, id int64) error

	GetEntities(ctx context.Context, folderID int64) ([]common.EntityRecord, error)
	CreateEntity(ctx context.Context, folderID int64, entity common.EntityRecord) (common.EntityRecord, error)
	UpdateEntity(ctx context.Context, id string, entity common.EntityRecord) error
	DeleteEntity(ctx context.Context, id string) error

	GetRelationships(ctx context.Context, folderID int64) ([]common.RelationshipRecord, error)
	CreateRelationship(ctx context.Context, folderID int64, relationship common.RelationshipRecord) (common.RelationshipRecord, error)
	DeleteRelationship(ctx context.Context, id string) error

	SaveAnalysis(ctx context.Context, folderID int64, correlationID string, result json.RawMessage) error
	GetLatestAnalysis(ctx context.Context, folderID int64) (AnalysisRecord, error)
}
