package routes

import (
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/pkg/common"
	"github.com/arclight-labs/casefile/backend/pkg/logger"
	"github.com/arclight-labs/casefile/backend/pkg/store"
)

// EditEntityHandler updates an entity
func EditEntityHandler(c echo.Context) error {
	type editEntityBody struct {
		FolderID   int64          `param:"id" validate:"required,numeric"`
		EntityID   string         `param:"entity_id" validate:"required"`
		Name       string         `json:"name" validate:"required"`
		Type       string         `json:"type" validate:"required"`
		Attributes map[string]any `json:"attributes"`
		X          *float64       `json:"x"`
		Y          *float64       `json:"y"`
	}

	type editEntityResponse struct {
		Message string `json:"message"`
	}

	data := new(editEntityBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editEntityResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editEntityResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, editEntityResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	err := st.UpdateEntity(ctx, data.EntityID, common.EntityRecord{
		Name:       data.Name,
		Type:       data.Type,
		Attributes: data.Attributes,
		X:          data.X,
		Y:          data.Y,
	})
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, editEntityResponse{
			Message: "Entity not found",
		})
	}
	if err != nil {
		logger.Error("Failed to update entity", "err", err)
		return c.JSON(http.StatusInternalServerError, editEntityResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, editEntityResponse{
		Message: "Entity updated successfully",
	})
}
