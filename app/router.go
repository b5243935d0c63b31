package app

import (
	"barkwise/pet-api/app/comment"
	"barkwise/pet-api/app/dog"
	"barkwise/pet-api/app/journal"
	"barkwise/pet-api/app/password"
	"barkwise/pet-api/app/progress"
	"barkwise/pet-api/app/root"
	"barkwise/pet-api/app/schedule"
	"barkwise/pet-api/app/user"
	"barkwise/pet-api/internal"
	"barkwise/pet-api/internal/respond"
	"barkwise/pet-api/pkg/middleware"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RouterOpts are the knobs of the HTTP layer. The zero value is usable:
// no CORS origins, no rate limit and no response cache.
type RouterOpts struct {
	CORSOrigins []string
	// Requests per second per IP on the credential endpoints, 0 disables
	RateLimit int
	// Lifetime of cached public GET responses, 0 disables caching
	CacheTTL   time.Duration
	CacheStore persist.CacheStore
	// Maximum accepted request body size
	MaxBodySize int64
}

// handler adapts a handler taking the dependencies to a gin.HandlerFunc
func handler(d *internal.Deps, h func(*gin.Context, *internal.Deps)) gin.HandlerFunc {
	return func(c *gin.Context) { h(c, d) }
}

// NewRouter builds the HTTP router. The returned stop function releases the
// background work of the middleware.
func NewRouter(d *internal.Deps, o RouterOpts) (*gin.Engine, func()) {
	respond.Setup()

	if o.MaxBodySize <= 0 {
		o.MaxBodySize = 1 << 20
	}

	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
		middleware.BodySizeLimiter(o.MaxBodySize),
	)

	if len(o.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     o.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.HandleMethodNotAllowed = true

	jwt := middleware.NewJWTMiddleware(d.Tokens)

	limited := func(c *gin.Context) { c.Next() }
	stop := func() {}

	if o.RateLimit > 0 {
		rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: o.RateLimit,
			Burst:             o.RateLimit * 2,
		})

		limited = rl.Middleware()
		stop = rl.Stop
	}

	cached := func(c *gin.Context) { c.Next() }
	if o.CacheTTL > 0 {
		store := o.CacheStore
		if store == nil {
			store = persist.NewMemoryStore(time.Minute)
		}

		cached = cache.CacheByRequestURI(store, o.CacheTTL)
	}

	// HEAD /heartbeat		-> Used to check if the server is alive
	router.HEAD("/heartbeat", root.Heartbeat)

	// GET /validate		-> Validates a JWT token
	router.GET("/validate", jwt, root.Validate)

	// POST /register		-> Registers a new user
	router.POST("/register", limited, handler(d, user.UserRegister))

	// POST /login			-> Logs in a user and returns a JWT token
	router.POST("/login", limited, handler(d, user.UserLogin))

	// GET /profile			-> Returns the profile of the logged in user
	router.GET("/profile", jwt, handler(d, user.UserProfile))

	// POST /forgot-password	-> Mails a password reset link
	router.POST("/forgot-password", limited, handler(d, password.ForgotPassword))

	// POST /reset-password		-> Sets a new password using a reset token
	router.POST("/reset-password", limited, handler(d, password.ResetPassword))

	// GET/POST /dogprofile		-> Reads or replaces the dog profile
	router.GET("/dogprofile", handler(d, dog.DogProfileFetch))
	router.POST("/dogprofile", handler(d, dog.DogProfileCreate))

	// GET/POST /progress		-> Training milestones
	router.GET("/progress", cached, handler(d, progress.MilestoneList))
	router.POST("/progress", handler(d, progress.MilestoneCreate))

	// GET/POST /dog-weight-history	-> Weight log, sorted by date
	router.GET("/dog-weight-history", cached, handler(d, dog.WeightList))
	router.POST("/dog-weight-history", handler(d, dog.WeightCreate))

	j := router.Group("/journal", jwt)
	{
		j.GET("", handler(d, journal.JournalList))
		j.GET("/:id", handler(d, journal.JournalFetch))
		j.POST("", handler(d, journal.JournalCreate))
		j.PUT("/:id", handler(d, journal.JournalUpdate))
		j.DELETE("/:id", handler(d, journal.JournalDelete))
	}

	s := router.Group("/schedule", jwt)
	{
		s.GET("", handler(d, schedule.ScheduleList))
		s.GET("/:id", handler(d, schedule.ScheduleFetch))
		s.POST("", handler(d, schedule.ScheduleCreate))
		s.PUT("/:id", handler(d, schedule.ScheduleUpdate))
		s.DELETE("/:id", handler(d, schedule.ScheduleDelete))
	}

	cm := router.Group("/comments")
	{
		// Reading comments is public
		cm.GET("", handler(d, comment.CommentList))
		cm.GET("/:id", handler(d, comment.CommentFetch))

		cm.POST("", jwt, handler(d, comment.CommentCreate))
		cm.PUT("/:id", jwt, handler(d, comment.CommentUpdate))
		cm.DELETE("/:id", jwt, handler(d, comment.CommentDelete))
	}

	return router, stop
}
