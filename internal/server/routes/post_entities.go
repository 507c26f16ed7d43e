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

// CreateEntityHandler adds an entity to a folder
func CreateEntityHandler(c echo.Context) error {
	type createEntityBody struct {
		FolderID   int64          `param:"id" validate:"required,numeric"`
		Name       string         `json:"name" validate:"required"`
		Type       string         `json:"type" validate:"required"`
		Attributes map[string]any `json:"attributes"`
		X          *float64       `json:"x"`
		Y          *float64       `json:"y"`
	}

	type createEntityResponse struct {
		Message string               `json:"message"`
		Entity  *common.EntityRecord `json:"entity,omitempty"`
	}

	data := new(createEntityBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createEntityResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createEntityResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createEntityResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	if _, err := st.GetFolder(ctx, data.FolderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, createEntityResponse{
				Message: "Folder not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, createEntityResponse{
			Message: "Internal server error",
		})
	}

	entity, err := st.CreateEntity(ctx, data.FolderID, common.EntityRecord{
		Name:       data.Name,
		Type:       data.Type,
		Attributes: data.Attributes,
		X:          data.X,
		Y:          data.Y,
	})
	if err != nil {
		logger.Error("Failed to create entity", "err", err)
		return c.JSON(http.StatusInternalServerError, createEntityResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createEntityResponse{
		Message: "Entity created successfully",
		Entity:  &entity,
	})
}
