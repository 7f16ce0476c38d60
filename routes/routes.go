package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/controllers"
	"github.com/cnagroup/cnacoin/controllers/admin_controllers"
	"github.com/cnagroup/cnacoin/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/health", controllers.GetHealth)

	app.Post("/api/v2/identity/sessions", controllers.CreateSession)

	account := app.Group("/api/v2/account", middlewares.Authenticate)
	account.Get("/me", controllers.GetMe)
	account.Get("/transactions", controllers.GetAccountTransactions)
	account.Get("/stats", controllers.GetAccountStats)
	account.Get("/leaderboard", controllers.GetLeaderboard)
	account.Put("/profile", controllers.UpdateProfile)

	admin := app.Group("/api/v2/admin", middlewares.Authenticate, middlewares.AdminValidator)
	admin.Get("/students", admin_controllers.GetStudents)
	admin.Post("/students", admin_controllers.CreateStudent)
	admin.Get("/students/:id", admin_controllers.GetStudent)
	admin.Put("/students/:id", admin_controllers.UpdateStudent)
	admin.Delete("/students/:id", admin_controllers.DeleteStudent)

	admin.Get("/turmas", admin_controllers.GetTurmas)
	admin.Post("/turmas", admin_controllers.CreateTurma)
	admin.Put("/turmas/:id", admin_controllers.UpdateTurma)
	admin.Delete("/turmas/:id", admin_controllers.DeleteTurma)

	admin.Post("/movements", admin_controllers.CreateMovement)
	admin.Get("/transactions", admin_controllers.GetTransactions)

	return app
}
