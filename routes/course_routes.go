package routes

import (
	"github.com/careerbridge/backend/handlers"
	"github.com/careerbridge/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	courses := api.Group("/courses")
	courses.Get("", handlers.GetAllCourses)
	courses.Get("/:id", handlers.GetCourseByID)
	courses.Get("/:id/curriculum", handlers.GetCurriculum)

	courses.Post("", middleware.Protected(), handlers.CreateCourse)
	courses.Put("/:id", middleware.Protected(), handlers.UpdateCourse)
	courses.Delete("/:id", middleware.Protected(), handlers.DeleteCourse)
	courses.Post("/:id/sections", middleware.Protected(), handlers.AddSection)
	courses.Post("/:id/sections/:sectionId/lessons", middleware.Protected(), handlers.AddLesson)
}
