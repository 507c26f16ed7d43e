package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/arclight-labs/casefile/backend/pkg/analysis"
	"github.com/arclight-labs/casefile/backend/pkg/common"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

type fakeStore struct {
	store.CaseStorage

	entities         []common.EntityRecord
	relationships    []common.RelationshipRecord
	entitiesErr      error
	entitiesFailures int

	savedFolderID      int64
	savedCorrelationID string
	savedResult        json.RawMessage
}

func (f *fakeStore) GetEntities(ctx context.Context, folderID int64) ([]common.EntityRecord, error) {
	if f.entitiesFailures > 0 {
		f.entitiesFailures--
		return nil, errors.New("connection reset")
	}
	if f.entitiesErr != nil {
		return nil, f.entitiesErr
	}
	return f.entities, nil
}

func (f *fakeStore) GetRelationships(ctx context.Context, folderID int64) ([]common.RelationshipRecord, error) {
	return f.relationships, nil
}

func (f *fakeStore) SaveAnalysis(ctx context.Context, folderID int64, correlationID string, result json.RawMessage) error {
	f.savedFolderID = folderID
	f.savedCorrelationID = correlationID
	f.savedResult = result
	return nil
}

func TestRunAnalysisStoresResult(t *testing.T) {
	st := &fakeStore{
		entities: []common.EntityRecord{
			{ID: "a", Name: "Alice", Type: "person"},
			{ID: "b", Name: "Bob", Type: "person"},
		},
		relationships: []common.RelationshipRecord{
			{ID: "r1", FromEntity: "a", ToEntity: "b", Type: "knows"},
		},
	}

	msg := AnalysisJobMsg{FolderID: 7, CorrelationID: "corr-1"}
	if err := runAnalysis(context.Background(), st, msg); err != nil {
		t.Fatalf("runAnalysis: %v", err)
	}

	if st.savedFolderID != 7 {
		t.Errorf("saved folder id = %d, want 7", st.savedFolderID)
	}
	if st.savedCorrelationID != "corr-1" {
		t.Errorf("saved correlation id = %q, want corr-1", st.savedCorrelationID)
	}

	var result analysis.Result
	if err := json.Unmarshal(st.savedResult, &result); err != nil {
		t.Fatalf("unmarshal stored result: %v", err)
	}
	if result.BasicMetrics.NodeCount != 2 {
		t.Errorf("node count = %d, want 2", result.BasicMetrics.NodeCount)
	}
	if result.BasicMetrics.EdgeCount != 1 {
		t.Errorf("edge count = %d, want 1", result.BasicMetrics.EdgeCount)
	}
}

func TestRunAnalysisRetriesTransientFetch(t *testing.T) {
	st := &fakeStore{
		entities:         []common.EntityRecord{{ID: "a", Name: "Alice", Type: "person"}},
		entitiesFailures: 2,
	}

	if err := runAnalysis(context.Background(), st, AnalysisJobMsg{FolderID: 3, CorrelationID: "corr-2"}); err != nil {
		t.Fatalf("runAnalysis: %v", err)
	}
	if st.savedResult == nil {
		t.Fatal("no result stored after transient failures")
	}
	if st.entitiesFailures != 0 {
		t.Errorf("entity fetch not retried, %d failures left", st.entitiesFailures)
	}
}

func TestRunAnalysisPropagatesFetchError(t *testing.T) {
	wantErr := errors.New("db down")
	st := &fakeStore{entitiesErr: wantErr}

	err := runAnalysis(context.Background(), st, AnalysisJobMsg{FolderID: 1})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
	if st.savedResult != nil {
		t.Error("result stored despite fetch error")
	}
}

func TestRunAnalysisRejectsDanglingRelationship(t *testing.T) {
	st := &fakeStore{
		entities: []common.EntityRecord{{ID: "a", Name: "Alice", Type: "person"}},
		relationships: []common.RelationshipRecord{
			{ID: "r1", FromEntity: "a", ToEntity: "ghost", Type: "knows"},
		},
	}

	err := runAnalysis(context.Background(), st, AnalysisJobMsg{FolderID: 1})
	var cerr *analysis.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConstructionError", err)
	}
	if st.savedResult != nil {
		t.Error("result stored despite construction error")
	}
}

func TestProcessAnalysisMessageRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing folder id", `{"correlation_id":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ProcessAnalysisMessage(context.Background(), &fakeStore{}, nil, tt.body); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
