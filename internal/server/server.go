package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/auth"
	"github.com/kamchatour/market-backend/internal/config"
	"github.com/kamchatour/market-backend/internal/handler"
	appmw "github.com/kamchatour/market-backend/internal/middleware"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
	"github.com/kamchatour/market-backend/internal/service"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("requestId", v.RequestID),
			)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repository.NewUserRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	ledgerRepo := repository.NewEcoLedgerRepository(db)
	boostRepo := repository.NewBoostRepository(db)
	tourRepo := repository.NewTourRepository(db)
	activityRepo := repository.NewGuideActivityRepository(db)

	authSvc := service.NewAuthService(userRepo, tokens)
	userSvc := service.NewUserService(userRepo)
	ratingSvc := service.NewRatingService(ratingRepo, userRepo)
	ecoSvc := service.NewEcoPointService(ledgerRepo)
	boostSvc := service.NewBoostService(boostRepo)
	tourSvc := service.NewTourService(tourRepo)
	activitySvc := service.NewGuideActivityService(activityRepo)
	discoverySvc := service.NewDiscoveryService(userRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	ratingHandler := handler.NewRatingHandler(ratingSvc, userSvc)
	ecoHandler := handler.NewEcoHandler(ecoSvc)
	boostHandler := handler.NewBoostHandler(boostSvc)
	cabinetHandler := handler.NewCabinetHandler(boostSvc, ecoSvc)
	tourHandler := handler.NewTourHandler(tourSvc)
	activityHandler := handler.NewActivityHandler(activitySvc)
	discoverHandler := handler.NewDiscoverHandler(discoverySvc)

	authMw := appmw.NewAuthMiddleware(tokens, userRepo)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/me", userHandler.Me, authMw.RequireAuth)
	e.PATCH("/me", userHandler.UpdateMe, authMw.RequireAuth)
	e.GET("/users/:id", userHandler.Get)
	e.GET("/users", userHandler.List)

	e.POST("/ratings", ratingHandler.Submit, authMw.RequireAuth)
	e.GET("/ratings/:userId", ratingHandler.Summary)

	e.POST("/eco/earn", ecoHandler.Earn, authMw.RequireAuth)
	e.POST("/eco/spend", ecoHandler.Spend, authMw.RequireAuth)
	e.GET("/eco/ledger", ecoHandler.Ledger, authMw.RequireAuth)

	e.POST("/boosts", boostHandler.Create, authMw.RequireAuth)
	e.GET("/boosts/my", boostHandler.ListMine, authMw.RequireAuth)

	e.GET("/cabinet/summary", cabinetHandler.Summary, authMw.RequireAuth)

	operator := e.Group("/operator", authMw.RequireAuth, authMw.RequireRole(model.RoleOperator))
	operator.POST("/tours", tourHandler.Create)
	operator.GET("/tours", tourHandler.ListMine)
	operator.POST("/tours/:id/publish", tourHandler.Publish)

	guide := e.Group("/guide", authMw.RequireAuth, authMw.RequireRole(model.RoleGuide))
	guide.POST("/activities", activityHandler.Create)
	guide.GET("/activities", activityHandler.ListMine)
	guide.POST("/activities/:id/publish", activityHandler.Publish)

	e.GET("/public/tours", tourHandler.ListPublic)
	e.GET("/public/activities", activityHandler.ListPublic)

	e.GET("/discover", discoverHandler.Discover, authMw.RequireAuth)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}
