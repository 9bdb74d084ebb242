package main

import (
	"log"
	"os"

	_ "github.com/1mdc/discourse-follow/config"
	"github.com/1mdc/discourse-follow/database"
	"github.com/1mdc/discourse-follow/internal/cache"
	authhandlers "github.com/1mdc/discourse-follow/internal/handlers/auth"
	"github.com/1mdc/discourse-follow/internal/handlers/follow"
	"github.com/1mdc/discourse-follow/internal/handlers/site"
	"github.com/1mdc/discourse-follow/internal/handlers/topics"
	"github.com/1mdc/discourse-follow/internal/handlers/users"
	"github.com/1mdc/discourse-follow/internal/hostext"
	"github.com/1mdc/discourse-follow/internal/middleware"
	"github.com/1mdc/discourse-follow/internal/settings"
	"github.com/1mdc/discourse-follow/internal/stores"
	"github.com/1mdc/discourse-follow/internal/token"
	"github.com/1mdc/discourse-follow/internal/user"

	"github.com/gin-gonic/gin"
)

func main() {
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	if err := database.ProcessMigrations(db); err != nil {
		log.Fatalf("Database migration error: %v", err)
	}

	siteSettings := settings.Load()

	// The follow feature hooks itself into the host shell here, instead of
	// mutating globals: a "following" entry in the top menu and a
	// "following" topic list filter.
	extensions := hostext.NewRegistry()
	extensions.AddTopMenuItem("following")
	extensions.AddAnonymousTopMenuItem("following")
	extensions.AddFilter("following")
	extensions.AddAnonymousFilter("following")

	userStore := &stores.GormUserStore{DB: db}
	followStore := &stores.GormFollowStore{DB: db}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		followStore.Cache = cache.NewRedisFollowCache(addr)
	}
	topicStore := &stores.GormTopicStore{DB: db}

	secret := []byte(os.Getenv("JWT_SECRET"))
	hasher := user.BcryptHasher{}
	tokenService := &token.JWTService{Secret: secret}

	auth := authhandlers.NewAuthHandler(userStore, hasher, tokenService)
	followHandler := follow.NewFollowHandler(userStore, followStore)
	userHandler := users.NewUserHandler(userStore, followStore, siteSettings)
	topicHandler := topics.NewTopicHandler(topicStore, followStore, extensions)
	siteHandler := site.NewSiteHandler(extensions)

	// Initialize router
	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.RequestLogger())

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
	}

	protected := r.Group("/")
	protected.Use(middleware.JWTAuth(tokenService))
	{
		protected.GET("/me", auth.GetCurrentUser)
	}

	// Follow pages and listings are public; the profile carries the
	// viewer-dependent "following" field, so the viewer is resolved when a
	// token is present.
	for _, root := range []string{"/users", "/u"} {
		g := r.Group(root)
		g.Use(middleware.OptionalJWTAuth(tokenService))
		g.GET("/:username", userHandler.Show)
		g.GET("/:username/follow", followHandler.Show)
		g.GET("/:username/follow/:type", followHandler.List)
	}

	// The mutate route answers Unauthenticated itself rather than letting
	// the middleware reject the request.
	followGroup := r.Group("/follow")
	followGroup.Use(middleware.OptionalJWTAuth(tokenService))
	followGroup.PUT("/:username", followHandler.Update)

	topicsGroup := r.Group("/topics")
	topicsGroup.Use(middleware.OptionalJWTAuth(tokenService))
	topicsGroup.GET("/following", topicHandler.ListFollowing)

	r.GET("/site/menu", siteHandler.Menu)

	// Start server on port from env or fallback
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
