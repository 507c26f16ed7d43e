package routes

import (
	"fmt"
	"net/http"
	"strings"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/internal/storage"
)

func GetAttachmentsHandler(c echo.Context) error {
	type getAttachmentsParams struct {
		FolderID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getAttachmentsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	s3Client := c.(*middleware.AppContext).App.S3

	keys, err := storage.ListAttachments(ctx, s3Client, fmt.Sprintf("folders/%d/attachments", params.FolderID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, keys)
}

// GetAttachmentLinkHandler returns a short-lived download link for an
// attachment key
func GetAttachmentLinkHandler(c echo.Context) error {
	type getAttachmentLinkParams struct {
		FolderID int64  `param:"id" validate:"required,numeric"`
		Key      string `json:"key" validate:"required"`
	}

	type getAttachmentLinkResponse struct {
		Message string `json:"message"`
	}

	params := new(getAttachmentLinkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getAttachmentLinkResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getAttachmentLinkResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getAttachmentLinkResponse{
			Message: "Unauthorized",
		})
	}

	// Keys outside the folder's prefix are not served.
	if !strings.HasPrefix(params.Key, fmt.Sprintf("folders/%d/", params.FolderID)) {
		return c.JSON(http.StatusForbidden, getAttachmentLinkResponse{
			Message: "Key does not belong to this folder",
		})
	}

	ctx := c.Request().Context()
	s3Client := c.(*middleware.AppContext).App.S3

	url, err := storage.GenerateDownloadLink(ctx, s3Client, params.Key)
	if err != nil {
		return c.JSON(http.StatusNotFound, getAttachmentLinkResponse{
			Message: "File does not exist",
		})
	}

	return c.JSON(http.StatusOK, getAttachmentLinkResponse{
		Message: url,
	})
}
