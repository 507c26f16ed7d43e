package routes

import (
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

// EditFolderHandler updates a folder's name and description
func EditFolderHandler(c echo.Context) error {
	type editFolderBody struct {
		FolderID    int64  `param:"id" validate:"required,numeric"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	type editFolderResponse struct {
		Message string `json:"message"`
	}

	data := new(editFolderBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editFolderResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editFolderResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, editFolderResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	err := st.UpdateFolder(ctx, data.FolderID, data.Name, data.Description)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, editFolderResponse{
			Message: "Folder not found",
		})
	}
	if err != nil {
		logger.Error("Failed to update folder", "err", err)
		return c.JSON(http.StatusInternalServerError, editFolderResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, editFolderResponse{
		Message: "Folder updated successfully",
	})
}
