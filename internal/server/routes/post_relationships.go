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

// CreateRelationshipHandler connects two entities in a folder
func CreateRelationshipHandler(c echo.Context) error {
	type createRelationshipBody struct {
		FolderID    int64  `param:"id" validate:"required,numeric"`
		FromEntity  string `json:"from_entity" validate:"required"`
		ToEntity    string `json:"to_entity" validate:"required"`
		Type        string `json:"type" validate:"required"`
		Strength    string `json:"strength" validate:"omitempty,oneof=weak medium strong"`
		Description string `json:"description"`
	}

	type createRelationshipResponse struct {
		Message      string                     `json:"message"`
		Relationship *common.RelationshipRecord `json:"relationship,omitempty"`
	}

	data := new(createRelationshipBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createRelationshipResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	relationship, err := st.CreateRelationship(ctx, data.FolderID, common.RelationshipRecord{
		FromEntity:  data.FromEntity,
		ToEntity:    data.ToEntity,
		Type:        data.Type,
		Strength:    data.Strength,
		Description: data.Description,
	})
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, createRelationshipResponse{
			Message: "Entity not found",
		})
	}
	if err != nil {
		logger.Error("Failed to create relationship", "err", err)
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{
			Message: "Could not create relationship",
		})
	}

	return c.JSON(http.StatusOK, createRelationshipResponse{
		Message:      "Relationship created successfully",
		Relationship: &relationship,
	})
}
