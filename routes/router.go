package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hallopetra/formbuilder-go/handlers"
	"github.com/hallopetra/formbuilder-go/middleware"
	"github.com/hallopetra/formbuilder-go/repositories"
	"github.com/hallopetra/formbuilder-go/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hallopetra/formbuilder-go/docs"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos := repositories.New()
	svc := services.New(repos)
	h := handlers.New(svc)

	// Pages. The public form view and submit stay outside the auth gate.
	r.GET("/", middleware.RootRedirect())
	r.GET("/login", h.Public.LoginPage)
	r.POST("/login", h.Auth.LoginForm)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/forms/:id", h.Public.ShowForm)
	r.POST("/forms/:id", h.Public.SubmitForm)

	admin := r.Group("/admin")
	admin.Use(middleware.RequirePageSession())
	{
		admin.GET("", h.Public.AdminPage)
	}

	// JSON API
	r.POST("/api/login", h.Auth.Login)
	r.POST("/api/forms/:id/submissions", h.Submission.Submit)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())
	{
		forms := api.Group("/forms")
		{
			forms.GET("", h.Form.GetForms)
			forms.POST("", h.Form.CreateForm)
			forms.GET("/:id", h.Form.GetFormByID)
			forms.PUT("/:id", h.Form.UpdateForm)
			forms.DELETE("/:id", h.Form.DeleteForm)
			forms.POST("/:id/duplicate", h.Form.DuplicateForm)
			forms.GET("/:id/submissions", h.Submission.GetFormSubmissions)
			forms.GET("/:id/export", h.Submission.ExportSubmissions)
		}
		api.DELETE("/submissions/:id", h.Submission.DeleteSubmission)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
