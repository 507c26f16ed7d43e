package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/pkg/common"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
)

// CreateFolderHandler creates a new case folder
func CreateFolderHandler(c echo.Context) error {
	type createFolderBody struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	type createFolderResponse struct {
		Message string         `json:"message"`
		Folder  *common.Folder `json:"folder,omitempty"`
	}

	data := new(createFolderBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createFolderResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createFolderResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createFolderResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	folder, err := st.CreateFolder(ctx, data.Name, data.Description)
	if err != nil {
		logger.Error("Failed to create folder", "err", err)
		return c.JSON(http.StatusInternalServerError, createFolderResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createFolderResponse{
		Message: "Folder created successfully",
		Folder:  &folder,
	})
}
