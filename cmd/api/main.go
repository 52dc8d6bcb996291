package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/bryerblack/projeto-principios-dev-web/internal/database"
	"github.com/bryerblack/projeto-principios-dev-web/internal/middleware"
	"github.com/bryerblack/projeto-principios-dev-web/internal/modules/auth"
	"github.com/bryerblack/projeto-principios-dev-web/internal/modules/place"
	"github.com/bryerblack/projeto-principios-dev-web/internal/modules/rating"
	"github.com/bryerblack/projeto-principios-dev-web/internal/modules/rent"
	"github.com/bryerblack/projeto-principios-dev-web/internal/modules/user"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/cache"
	jwtsvc "github.com/bryerblack/projeto-principios-dev-web/internal/pkg/jwt"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/logger"
	"github.com/bryerblack/projeto-principios-dev-web/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.Get()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	// Redis is optional; without it the listing cache degrades to no-op.
	var pageCache *cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		pageCache = cache.New(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		}))
		log.WithField("addr", addr).Info("redis cache enabled")
	}

	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	rentRepo := repository.NewRentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	userHandler := user.NewHandler(user.NewService(userRepo))
	placeHandler := place.NewHandler(place.NewService(placeRepo, addressRepo, equipmentRepo, rentRepo, pageCache))
	rentHandler := rent.NewHandler(rent.NewService(rentRepo, placeRepo, userRepo))
	ratingHandler := rating.NewHandler(rating.NewService(ratingRepo, userRepo, placeRepo))

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewRateLimiter(10, 20)

	// public
	public := r.Group("/")
	public.Use(limiter.Middleware())
	{
		authHandler.RegisterRoutes(public)
	}

	// protected
	protected := r.Group("/")
	protected.Use(middleware.Auth(j))
	{
		userHandler.RegisterRoutes(protected)
		placeHandler.RegisterRoutes(protected)
		rentHandler.RegisterRoutes(protected)
		ratingHandler.RegisterRoutes(protected)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
