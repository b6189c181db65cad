package routes

import (
	"github.com/gin-gonic/gin"

	"mbg_backend/internal/adapter/http/handlers"
)

const (
	PathEvents   = "/events"
	PathPrograms = "/programs"
	PathContact  = "/contact"
)

func addCatalogRoutes(rg *gin.RouterGroup, eventHandler *handlers.EventHandler, programHandler *handlers.ProgramHandler, contactHandler *handlers.ContactHandler) {
	events := rg.Group(PathEvents)
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.GET("/:id/registrations", eventHandler.ListRegistrations)
		events.POST("/:id/registrations", eventHandler.CreateRegistration)
	}

	programs := rg.Group(PathPrograms)
	{
		programs.GET("", programHandler.ListPrograms)
		programs.GET("/:id", programHandler.GetProgram)
		programs.POST("/:id/registrations", programHandler.CreateRegistration)
	}

	rg.POST(PathContact, contactHandler.Create)
}
