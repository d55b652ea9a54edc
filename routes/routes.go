package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/ai-study-backend/controllers"
	"github.com/vnkhanh/ai-study-backend/middleware"
)

func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.GetMe)
		auth.PUT("/me", middleware.AuthMiddleware(), controllers.UpdateMe)
		auth.PUT("/password", middleware.AuthMiddleware(), controllers.ChangePassword)
	}

	study := api.Group("/study")
	{
		study.Use(middleware.AuthMiddleware())

		// Tài liệu học tập
		study.POST("/documents", controllers.UploadDocument)
		study.GET("/documents", controllers.ListDocuments)
		study.GET("/documents/:id", controllers.GetDocument)
		study.GET("/documents/:id/status", controllers.GetDocumentStatus)
		study.DELETE("/documents/:id", controllers.DeleteDocument)

		// Quiz
		study.GET("/documents/:id/quizzes", controllers.GetQuizzes)
		study.POST("/documents/:id/regenerate/quiz", controllers.RegenerateQuiz)

		// Flashcards
		study.GET("/documents/:id/flashcards", controllers.GetFlashcards)
		study.POST("/documents/:id/regenerate/flashcards", controllers.RegenerateFlashcards)

		// Hỏi đáp về tài liệu
		study.POST("/documents/:id/chat", controllers.Chat)
		study.GET("/documents/:id/chat/history", controllers.GetChatHistory)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.RequireRoles("admin"))
		admin.GET("/documents", controllers.AdminListDocuments)
	}

	return r
}
