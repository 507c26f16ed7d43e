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

func DeleteRelationshipHandler(c echo.Context) error {
	type deleteRelationshipParams struct {
		FolderID       int64  `param:"id" validate:"required,numeric"`
		RelationshipID string `param:"relationship_id" validate:"required"`
	}

	type deleteRelationshipResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteRelationshipParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteRelationshipResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteRelationshipResponse{
			Message: "Invalid request params",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, deleteRelationshipResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	err := st.DeleteRelationship(ctx, params.RelationshipID)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, deleteRelationshipResponse{
			Message: "Relationship not found",
		})
	}
	if err != nil {
		logger.Error("Failed to delete relationship", "err", err)
		return c.JSON(http.StatusInternalServerError, deleteRelationshipResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, deleteRelationshipResponse{
		Message: "Relationship deleted successfully",
	})
}
