package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/kamchatour/market-backend/internal/auth"
	"github.com/kamchatour/market-backend/internal/config"
	"github.com/kamchatour/market-backend/internal/db"
	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
	"github.com/kamchatour/market-backend/internal/service"
)

// seed populates a development database with one user per role plus
// sample listings, boosts and eco-point history.
func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	userRepo := repository.NewUserRepository(conn)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, tokens)
	tourSvc := service.NewTourService(repository.NewTourRepository(conn))
	activitySvc := service.NewGuideActivityService(repository.NewGuideActivityRepository(conn))
	boostSvc := service.NewBoostService(repository.NewBoostRepository(conn))
	ecoSvc := service.NewEcoPointService(repository.NewEcoLedgerRepository(conn))

	suffix := uuid.NewString()[:8]

	traveler, err := authSvc.Signup(ctx, service.SignupInput{
		Email:       fmt.Sprintf("traveler-%s@example.com", suffix),
		Password:    "demo-password",
		Role:        model.RoleTraveler,
		DisplayName: "Demo Traveler",
		Preferences: map[string]interface{}{"difficulty": "easy", "season": "summer"},
	})
	if err != nil {
		return fmt.Errorf("seed traveler: %w", err)
	}

	company := "Volcano Trails LLC"
	operator, err := authSvc.Signup(ctx, service.SignupInput{
		Email:       fmt.Sprintf("operator-%s@example.com", suffix),
		Password:    "demo-password",
		Role:        model.RoleOperator,
		DisplayName: "Demo Operator",
		CompanyName: &company,
	})
	if err != nil {
		return fmt.Errorf("seed operator: %w", err)
	}

	guide, err := authSvc.Signup(ctx, service.SignupInput{
		Email:       fmt.Sprintf("guide-%s@example.com", suffix),
		Password:    "demo-password",
		Role:        model.RoleGuide,
		DisplayName: "Demo Guide",
	})
	if err != nil {
		return fmt.Errorf("seed guide: %w", err)
	}

	tour, err := tourSvc.Create(ctx, operator.ID, service.TourInput{
		Title:    "Avacha volcano ascent",
		Price:    18000,
		Currency: "RUB",
		Location: map[string]interface{}{"city": "Petropavlovsk-Kamchatsky", "country": "RU"},
	})
	if err != nil {
		return fmt.Errorf("seed tour: %w", err)
	}
	if _, err := tourSvc.Publish(ctx, operator.ID, tour.ID); err != nil {
		return fmt.Errorf("publish tour: %w", err)
	}

	activity, err := activitySvc.Create(ctx, guide.ID, service.GuideActivityInput{
		Title: "Coastal kayaking with a local guide",
		Tags:  []string{"kayak", "wildlife"},
	})
	if err != nil {
		return fmt.Errorf("seed activity: %w", err)
	}
	if _, err := activitySvc.Publish(ctx, guide.ID, activity.ID); err != nil {
		return fmt.Errorf("publish activity: %w", err)
	}

	week := 24 * 7
	if _, err := boostSvc.Create(ctx, operator, "visibility", 5, &week, nil); err != nil {
		return fmt.Errorf("seed boost: %w", err)
	}

	if _, err := ecoSvc.Earn(ctx, traveler, 100, "welcome bonus", nil); err != nil {
		return fmt.Errorf("seed eco earn: %w", err)
	}
	if _, err := ecoSvc.Spend(ctx, traveler, 30, "badge redemption", nil); err != nil {
		return fmt.Errorf("seed eco spend: %w", err)
	}

	log.Printf("seeded users %d/%d/%d, tour %d, activity %d", traveler.ID, operator.ID, guide.ID, tour.ID, activity.ID)
	return nil
}
