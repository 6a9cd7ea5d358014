package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quiz-backend/internal/config"
	"github.com/quizdeck/quiz-backend/internal/handler"
	"github.com/quizdeck/quiz-backend/internal/middleware"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Account  *handler.AccountHandler
	Quiz     *handler.QuizHandler
	Question *handler.QuestionHandler
	WS       *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authService)

	// Rate limiter for credential endpoints (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Account ───────────────────────────────────────────────────────
	account := router.Group("/v1/account")
	{
		account.POST("/register", authLimiter.Middleware(), handlers.Account.Register)
		account.POST("/login", authLimiter.Middleware(), handlers.Account.Login)
		account.DELETE("/logout", requireAuth, handlers.Account.Logout)
		account.GET("", requireAuth, handlers.Account.GetProfile)
		account.PUT("", requireAuth, handlers.Account.UpdateProfile)
	}

	// ─── Quiz ──────────────────────────────────────────────────────────
	quiz := router.Group("/v1/quiz")
	{
		quiz.POST("", requireAuth, handlers.Quiz.CreateQuiz)
		quiz.GET("", handlers.Quiz.ListQuizzes)
		quiz.GET("/my", requireAuth, handlers.Quiz.ListMyQuizzes)
		quiz.GET("/:id", handlers.Quiz.GetQuiz)
		quiz.GET("/:id/stats", handlers.Quiz.GetQuizStats)
		quiz.PUT("/:id", requireAuth, handlers.Quiz.UpdateQuiz)
		quiz.DELETE("/:id", requireAuth, handlers.Quiz.DeleteQuiz)

		// Participation is open to anonymous users; an authenticated
		// participant also gets account tallies updated.
		quiz.POST("/:id/participate", middleware.OptionalAuth(authService), handlers.Quiz.Participate)
	}

	// ─── Question ──────────────────────────────────────────────────────
	question := router.Group("/v1/question")
	question.Use(requireAuth)
	{
		question.POST("/:id", handlers.Question.CreateQuestion)
		question.PUT("/:id", handlers.Question.UpdateQuestion)
		question.DELETE("/:id", handlers.Question.DeleteQuestion)
		question.GET("/:id", handlers.Question.ListQuestions)

		question.POST("/:id/option", handlers.Question.AddOption)
		question.PUT("/:id/option/:option", handlers.Question.UpdateOption)
		question.DELETE("/:id/option/:option", handlers.Question.DeleteOption)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/quiz/:id/stats", handlers.WS.QuizStatsStream)
	}

	return router
}
