package routes

import (
	"errors"
	"fmt"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/internal/storage"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

// AddAttachmentsHandler uploads case material to a folder
// (multipart/form-data)
func AddAttachmentsHandler(c echo.Context) error {
	type addAttachmentsParams struct {
		FolderID int64 `param:"id" validate:"required,numeric"`
	}

	type addAttachmentsResponse struct {
		Message string   `json:"message"`
		Keys    []string `json:"keys,omitempty"`
	}

	params := new(addAttachmentsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, addAttachmentsResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, addAttachmentsResponse{
			Message: "Invalid request params",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, addAttachmentsResponse{
			Message: "Invalid request body",
		})
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		return c.JSON(http.StatusBadRequest, addAttachmentsResponse{
			Message: "No files provided",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, addAttachmentsResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	if _, err := st.GetFolder(ctx, params.FolderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, addAttachmentsResponse{
				Message: "Folder not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, addAttachmentsResponse{
			Message: "Internal server error",
		})
	}

	s3Client := c.(*middleware.AppContext).App.S3
	keys := make([]string, 0, len(uploads))
	for _, file := range uploads {
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, addAttachmentsResponse{
				Message: "Could not open file",
			})
		}
		defer src.Close()

		fId, err := gonanoid.New()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, addAttachmentsResponse{
				Message: "Internal server error",
			})
		}
		key, err := storage.PutAttachment(
			ctx,
			s3Client,
			fmt.Sprintf("folders/%d/attachments", params.FolderID),
			file.Filename,
			fId,
			src,
		)
		if err != nil {
			logger.Error("Failed to upload attachment", "err", err)
			return c.JSON(http.StatusInternalServerError, addAttachmentsResponse{
				Message: "Internal server error",
			})
		}
		keys = append(keys, key)
	}

	return c.JSON(http.StatusOK, addAttachmentsResponse{
		Message: "Attachments uploaded successfully",
		Keys:    keys,
	})
}
