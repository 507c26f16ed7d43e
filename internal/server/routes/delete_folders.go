package routes

import (
	"errors"
	"fmt"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/internal/storage"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

// DeleteFolderHandler removes a folder, its graph data and its
// attachments
func DeleteFolderHandler(c echo.Context) error {
	type deleteFolderParams struct {
		FolderID int64 `param:"id" validate:"required,numeric"`
	}

	type deleteFolderResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteFolderParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteFolderResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteFolderResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, deleteFolderResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	err := st.DeleteFolder(ctx, params.FolderID)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, deleteFolderResponse{
			Message: "Folder not found",
		})
	}
	if err != nil {
		logger.Error("Failed to delete folder", "err", err)
		return c.JSON(http.StatusInternalServerError, deleteFolderResponse{
			Message: "Internal server error",
		})
	}

	s3Client := c.(*middleware.AppContext).App.S3
	prefix := fmt.Sprintf("folders/%d", params.FolderID)
	if err := storage.DeletePrefix(ctx, s3Client, prefix); err != nil {
		logger.Error("Failed to delete folder attachments", "folder_id", params.FolderID, "err", err)
	}

	return c.JSON(http.StatusOK, deleteFolderResponse{
		Message: "Folder deleted successfully",
	})
}
