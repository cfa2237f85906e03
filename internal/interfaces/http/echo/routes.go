package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, importHandler *ImportHandler, duplicateHandler *DuplicateHandler, runHandler *ImportRunHandler) {
	api := server.Group("/api/v1", RequireOwner())

	api.POST("/contacts/import", importHandler.ImportContacts)
	api.GET("/contacts/duplicates", duplicateHandler.DetectDuplicates)
	api.POST("/contacts/duplicates/remove", duplicateHandler.RemoveDuplicates)
	api.GET("/imports", runHandler.ListImportRuns)
	api.GET("/imports/:id", runHandler.GetImportRun)
}
