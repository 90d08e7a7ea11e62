package routes

import (
	"github.com/DedS3t/monopoly-engine/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a *fiber.App) {
	route := a.Group("/game")
	route.Get("/all", controllers.ActiveSessions)
	route.Get("/state/:chat", controllers.SessionState)
}
