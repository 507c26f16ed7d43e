package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/arclight-labs/casefile/backend/internal/queue"
	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

// RunAnalysisHandler enqueues a graph analysis for a folder. The worker
// picks it up; clients poll the GET endpoint for the result.
func RunAnalysisHandler(c echo.Context) error {
	type runAnalysisParams struct {
		FolderID int64 `param:"id" validate:"required,numeric"`
	}

	type runAnalysisResponse struct {
		Message       string `json:"message"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}

	params := new(runAnalysisParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, runAnalysisResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, runAnalysisResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, runAnalysisResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	if _, err := st.GetFolder(ctx, params.FolderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, runAnalysisResponse{
				Message: "Folder not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, runAnalysisResponse{
			Message: "Internal server error",
		})
	}

	correlationID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, runAnalysisResponse{
			Message: "Internal server error",
		})
	}

	msgBytes, err := json.Marshal(queue.AnalysisJobMsg{
		FolderID:      params.FolderID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, runAnalysisResponse{
			Message: "Internal server error",
		})
	}

	ch := c.(*middleware.AppContext).App.Queue
	if err := queue.PublishFIFO(ch, queue.AnalysisQueue, msgBytes); err != nil {
		logger.Error("Failed to publish analysis job", "folder_id", params.FolderID, "err", err)
		return c.JSON(http.StatusInternalServerError, runAnalysisResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusAccepted, runAnalysisResponse{
		Message:       "Analysis queued",
		CorrelationID: correlationID,
	})
}
