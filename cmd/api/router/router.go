package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"dream-journal/cmd/api/auth"
	"dream-journal/cmd/api/handlers"
	"dream-journal/cmd/api/middleware"
	"dream-journal/config"
	_ "dream-journal/docs"
	"dream-journal/generator"
	"dream-journal/repositories"
	"dream-journal/services"
)

func New(cfg config.AppConfig, database *mongo.Database, jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := database.RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded avatars
	r.Static("/uploads", cfg.Uploads.Dir)

	userRepo := repositories.NewUserRepository(database)
	dreamRepo := repositories.NewDreamRepository(database)
	insightRepo := repositories.NewInsightRepository(database)
	aiLogRepo := repositories.NewAILogRepository(database)

	gen := generator.NewGemini(cfg.GeminiAPIKey, aiLogRepo)
	userSvc := services.NewUserService(userRepo)
	dreamSvc := services.NewDreamService(dreamRepo, userRepo)
	insightSvc := services.NewInsightService(dreamRepo, insightRepo, gen, cfg.Insights)

	requireAuth := middleware.TokenAuthorization(jwtManager)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handlers.RegisterHandler(userSvc, jwtManager))
			authGroup.POST("/login", handlers.LoginHandler(userSvc, jwtManager))
		}

		api.GET("/users/me", requireAuth, handlers.MeHandler(userSvc))
		api.POST("/upload-avatar", requireAuth, handlers.UploadAvatarHandler(userSvc, cfg.Uploads.Dir))

		dreams := api.Group("/dreams")
		{
			// Public route: community feed of dreams marked public
			dreams.GET("/public", handlers.PublicDreamsHandler(dreamSvc))

			dreams.POST("", requireAuth, handlers.CreateDreamHandler(dreamSvc))
			dreams.GET("", requireAuth, handlers.ListDreamsHandler(dreamSvc))
			dreams.GET("/:id", requireAuth, handlers.GetDreamHandler(dreamSvc))
			dreams.PATCH("/:id", requireAuth, handlers.UpdateDreamHandler(dreamSvc))
			dreams.DELETE("/:id", requireAuth, handlers.DeleteDreamHandler(dreamSvc))

			dreams.POST("/:id/like", requireAuth, handlers.ToggleLikeHandler(dreamSvc))
			dreams.POST("/:id/comment", requireAuth, handlers.AddCommentHandler(dreamSvc))
		}

		insights := api.Group("/insights", requireAuth)
		{
			insights.POST("/single/:id", handlers.GenerateSingleInsightHandler(insightSvc))
			insights.POST("/user-pattern", handlers.GenerateUserPatternInsightHandler(insightSvc))
			insights.POST("/community", handlers.GenerateCommunityInsightHandler(insightSvc))
			insights.POST("/save", handlers.SaveInsightHandler(insightSvc))
			insights.GET("/dream/:dreamId", handlers.GetDreamInsightsHandler(insightSvc))
			insights.DELETE("/:id", handlers.DeleteInsightHandler(insightSvc))
		}
	}

	return r
}
