package routes

import (
	"fmt"
	"net/http"
	"strings"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/internal/storage"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
)

func DeleteAttachmentHandler(c echo.Context) error {
	type deleteAttachmentParams struct {
		FolderID int64  `param:"id" validate:"required,numeric"`
		Key      string `json:"key" validate:"required"`
	}

	type deleteAttachmentResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteAttachmentParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteAttachmentResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteAttachmentResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, deleteAttachmentResponse{
			Message: "Unauthorized",
		})
	}

	if !strings.HasPrefix(params.Key, fmt.Sprintf("folders/%d/", params.FolderID)) {
		return c.JSON(http.StatusForbidden, deleteAttachmentResponse{
			Message: "Key does not belong to this folder",
		})
	}

	ctx := c.Request().Context()
	s3Client := c.(*middleware.AppContext).App.S3

	if err := storage.DeleteAttachment(ctx, s3Client, params.Key); err != nil {
		logger.Error("Failed to delete attachment", "err", err)
		return c.JSON(http.StatusInternalServerError, deleteAttachmentResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, deleteAttachmentResponse{
		Message: "Attachment deleted successfully",
	})
}
