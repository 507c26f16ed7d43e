package server

import (
	"github.com/labstack/echo/v4"

	"github.com/arclight-labs/casefile/backend/internal/server/middleware"
	"github.com/arclight-labs/casefile/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Folder routes
	apiRoutes.GET("/folders", routes.GetFoldersHandler)
	apiRoutes.GET("/folders/:id", routes.GetFolderHandler)
	apiRoutes.POST("/folders", routes.CreateFolderHandler, middleware.RequirePermission("folder.create"))
	apiRoutes.PATCH("/folders/:id", routes.EditFolderHandler, middleware.RequirePermission("folder.update"))
	apiRoutes.DELETE("/folders/:id", routes.DeleteFolderHandler, middleware.RequirePermission("folder.delete"))

	// Entity routes
	apiRoutes.GET("/folders/:id/entities", routes.GetEntitiesHandler)
	apiRoutes.POST("/folders/:id/entities", routes.CreateEntityHandler, middleware.RequirePermission("entity.create"))
	apiRoutes.PATCH("/folders/:id/entities/:entity_id", routes.EditEntityHandler, middleware.RequirePermission("entity.update"))
	apiRoutes.DELETE("/folders/:id/entities/:entity_id", routes.DeleteEntityHandler, middleware.RequirePermission("entity.delete"))

	// Relationship routes
	apiRoutes.GET("/folders/:id/relationships", routes.GetRelationshipsHandler)
	apiRoutes.POST("/folders/:id/relationships", routes.CreateRelationshipHandler, middleware.RequirePermission("relationship.create"))
	apiRoutes.DELETE("/folders/:id/relationships/:relationship_id", routes.DeleteRelationshipHandler, middleware.RequirePermission("relationship.delete"))

	// Attachment routes
	apiRoutes.GET("/folders/:id/attachments", routes.GetAttachmentsHandler)
	apiRoutes.POST("/folders/:id/attachments", routes.AddAttachmentsHandler, middleware.RequirePermission("attachment.add"))
	apiRoutes.POST("/folders/:id/attachment", routes.GetAttachmentLinkHandler)
	apiRoutes.DELETE("/folders/:id/attachments", routes.DeleteAttachmentHandler, middleware.RequirePermission("attachment.delete"))

	// Analysis routes
	apiRoutes.POST("/folders/:id/analysis", routes.RunAnalysisHandler, middleware.RequirePermission("analysis.run"))
	apiRoutes.GET("/folders/:id/analysis", routes.GetAnalysisHandler)
	apiRoutes.GET("/folders/:id/analysis/centrality", routes.GetAnalysisCentralityHandler)
	apiRoutes.GET("/folders/:id/analysis/communities", routes.GetAnalysisCommunitiesHandler)
	apiRoutes.GET("/folders/:id/analysis/visualization", routes.GetAnalysisVisualizationHandler)
}
