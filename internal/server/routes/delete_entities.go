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

// DeleteEntityHandler removes an entity and every relationship that
// touches it
func DeleteEntityHandler(c echo.Context) error {
	type deleteEntityParams struct {
		FolderID int64  `param:"id" validate:"required,numeric"`
		EntityID string `param:"entity_id" validate:"required"`
	}

	type deleteEntityResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteEntityParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteEntityResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteEntityResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, deleteEntityResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	err := st.DeleteEntity(ctx, params.EntityID)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, deleteEntityResponse{
			Message: "Entity not found",
		})
	}
	if err != nil {
		logger.Error("Failed to delete entity", "err", err)
		return c.JSON(http.StatusInternalServerError, deleteEntityResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, deleteEntityResponse{
		Message: "Entity deleted successfully",
	})
}
