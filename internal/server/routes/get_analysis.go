package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/pkg/analysis"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

// GetAnalysisHandler returns the latest stored analysis for a folder.
func GetAnalysisHandler(c echo.Context) error {
	record, errResp := latestAnalysis(c)
	if record == nil {
		return errResp
	}

	type getAnalysisResponse struct {
		CorrelationID string          `json:"correlation_id"`
		CreatedAt     time.Time       `json:"created_at"`
		Result        json.RawMessage `json:"result"`
	}

	return c.JSON(http.StatusOK, getAnalysisResponse{
		CorrelationID: record.CorrelationID,
		CreatedAt:     record.CreatedAt,
		Result:        record.Result,
	})
}

// GetAnalysisCentralityHandler returns only the centrality slice.
func GetAnalysisCentralityHandler(c echo.Context) error {
	result, errResp := latestAnalysisResult(c)
	if result == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, result.Centrality)
}

// GetAnalysisCommunitiesHandler returns only the community slice.
func GetAnalysisCommunitiesHandler(c echo.Context) error {
	result, errResp := latestAnalysisResult(c)
	if result == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, result.Communities)
}

// GetAnalysisVisualizationHandler returns only the visualization slice.
func GetAnalysisVisualizationHandler(c echo.Context) error {
	result, errResp := latestAnalysisResult(c)
	if result == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, result.Visualization)
}

// latestAnalysis loads the newest stored analysis record for the folder
// in the path. On failure it writes the error response and returns nil.
func latestAnalysis(c echo.Context) (*store.AnalysisRecord, error) {
	type getAnalysisParams struct {
		FolderID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getAnalysisParams)
	if err := c.Bind(params); err != nil {
		return nil, c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return nil, c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	record, err := st.GetLatestAnalysis(ctx, params.FolderID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, c.JSON(http.StatusNotFound, map[string]string{"error": "No analysis available for this folder"})
	}
	if err != nil {
		return nil, c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return &record, nil
}

func latestAnalysisResult(c echo.Context) (*analysis.Result, error) {
	record, errResp := latestAnalysis(c)
	if record == nil {
		return nil, errResp
	}

	var result analysis.Result
	if err := json.Unmarshal(record.Result, &result); err != nil {
		return nil, c.JSON(http.StatusInternalServerError, map[string]string{"error": "Stored analysis is corrupt"})
	}
	return &result, nil
}
