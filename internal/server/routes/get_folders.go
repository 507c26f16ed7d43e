package routes

import (
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/pkg/common"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

func GetFoldersHandler(c echo.Context) error {
	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	folders, err := st.GetFolders(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, folders)
}

func GetFolderHandler(c echo.Context) error {
	type getFolderParams struct {
		FolderID int64 `param:"id" validate:"required,numeric"`
	}

	type getFolderResponse struct {
		Message string         `json:"message"`
		Folder  *common.Folder `json:"folder,omitempty"`
	}

	params := new(getFolderParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getFolderResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getFolderResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, getFolderResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	folder, err := st.GetFolder(ctx, params.FolderID)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, getFolderResponse{
			Message: "Folder not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getFolderResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getFolderResponse{
		Message: "Folder found",
		Folder:  &folder,
	})
}
