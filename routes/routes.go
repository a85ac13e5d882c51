package routes

import (
	"net/http"

	"blogicum/handlers"
	"blogicum/helper"
	"blogicum/logger"
	"blogicum/middleware"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
)

// App carries everything the router needs. main and the integration
// suite build it from their own storage.
type App struct {
	Auth       services.AuthService
	Tokens     services.TokenService
	Posts      services.PostService
	Comments   services.CommentService
	Profiles   services.ProfileService
	Categories services.CategoryService
	Locations  services.LocationService

	MediaURL string
	MediaDir string
}

func Setup(app App) *gin.Engine {
	httpHelper := helper.NewHTTPHelper()

	authHandler := handlers.NewAuthHandler(app.Auth, httpHelper)
	postHandler := handlers.NewPostHandler(app.Posts, httpHelper)
	commentHandler := handlers.NewCommentHandler(app.Comments, httpHelper)
	profileHandler := handlers.NewProfileHandler(app.Profiles, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(app.Categories, httpHelper)
	locationHandler := handlers.NewLocationHandler(app.Locations, httpHelper)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error.Printf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		httpHelper.SendInternalError(c, nil)
		c.Abort()
	}))
	router.Use(cors())

	router.NoRoute(func(c *gin.Context) {
		httpHelper.SendNotFoundError(c, "page not found", httpHelper.EmptyJsonMap())
	})
	router.NoMethod(func(c *gin.Context) {
		httpHelper.SendMethodNotAllowed(c, http.StatusText(http.StatusMethodNotAllowed), httpHelper.EmptyJsonMap())
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if app.MediaDir != "" && app.MediaURL != "" {
		router.Static(app.MediaURL, app.MediaDir)
	}

	requireAuth := middleware.AuthMiddleware(app.Tokens)
	optionalAuth := middleware.OptionalAuth(app.Tokens)

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/registration/", authHandler.Register)
		auth.POST("/login/", authHandler.Login)
		auth.POST("/logout/", requireAuth, authHandler.Logout)
		auth.GET("/me/", requireAuth, authHandler.Me)
	}

	// Public routes; a token only changes what the owner may see
	public := router.Group("/")
	public.Use(optionalAuth)
	{
		public.GET("/", postHandler.Index)
		public.GET("/posts/:id/", postHandler.GetPost)
		public.GET("/category/:slug/", postHandler.CategoryPosts)
		public.GET("/profile/:username/", profileHandler.GetProfile)
		public.GET("/categories/", categoryHandler.GetCategories)
	}

	// Protected routes
	protected := router.Group("/")
	protected.Use(requireAuth)
	{
		posts := protected.Group("/posts")
		{
			posts.GET("/create/", postHandler.CreateForm)
			posts.POST("/create/", postHandler.CreatePost)
			posts.GET("/:id/edit/", postHandler.EditForm)
			posts.POST("/:id/edit/", postHandler.UpdatePost)
			posts.GET("/:id/delete/", postHandler.DeleteConfirmation)
			posts.POST("/:id/delete/", postHandler.DeletePost)

			posts.POST("/:id/comment/", commentHandler.AddComment)
			posts.GET("/:id/edit_comment/:cid/", commentHandler.EditForm)
			posts.POST("/:id/edit_comment/:cid/", commentHandler.UpdateComment)
			posts.GET("/:id/delete_comment/:cid/", commentHandler.DeleteConfirmation)
			posts.POST("/:id/delete_comment/:cid/", commentHandler.DeleteComment)
		}

		protected.GET("/profile/:username/edit/", profileHandler.EditForm)
		protected.POST("/profile/:username/edit/", profileHandler.UpdateProfile)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/categories/", categoryHandler.GetAllCategories)
			admin.POST("/categories/", categoryHandler.CreateCategory)
			admin.PUT("/categories/:slug/", categoryHandler.UpdateCategory)
			admin.DELETE("/categories/:slug/", categoryHandler.DeleteCategory)

			admin.GET("/locations/", locationHandler.GetLocations)
			admin.POST("/locations/", locationHandler.CreateLocation)
			admin.PUT("/locations/:id/", locationHandler.UpdateLocation)
			admin.DELETE("/locations/:id/", locationHandler.DeleteLocation)
		}
	}

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
