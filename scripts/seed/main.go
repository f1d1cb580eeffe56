package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/stressbuster/stressbuster-api/api/handlers"
	"github.com/stressbuster/stressbuster-api/config"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

const adminEmail = "admin@stressbuster.com"

// Fills an empty database with counselors, helplines, resource categories and the
// super admin. Collections that already hold data are left alone.
// Usage: go run ./scripts/seed <admin password>
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts/seed <admin password>")
		os.Exit(1)
	}

	conf, err := config.New()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	a := handlers.App{Config: *conf}
	if err := a.Initialize(ctx); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}
	defer a.Close(context.Background())

	if err := seed(ctx, a.Stores, os.Args[1]); err != nil {
		zap.S().Fatalw("seed failed", "error", err)
	}
	zap.S().Info("seed complete")
}

func seed(ctx context.Context, s databases.Stores, adminPassword string) error {
	if err := seedCounselors(ctx, s.Counselors); err != nil {
		return fmt.Errorf("counselors: %w", err)
	}
	if err := seedHelplines(ctx, s.Helplines); err != nil {
		return fmt.Errorf("helplines: %w", err)
	}
	if err := seedCategories(ctx, s.Resources); err != nil {
		return fmt.Errorf("resource categories: %w", err)
	}
	if err := seedAdmin(ctx, s.Admins, adminPassword); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	return nil
}

func seedCounselors(ctx context.Context, db databases.CounselorDatabase) error {
	n, err := db.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		zap.S().Infow("counselors already present, skipping", "count", n)
		return nil
	}
	for _, c := range counselors {
		if _, err := db.InsertOne(ctx, c); err != nil {
			return err
		}
	}
	zap.S().Infow("seeded counselors", "count", len(counselors))
	return nil
}

func seedHelplines(ctx context.Context, db databases.HelplineDatabase) error {
	existing, err := db.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		zap.S().Infow("helplines already present, skipping", "count", len(existing))
		return nil
	}
	for _, h := range helplines {
		if _, err := db.InsertOne(ctx, h); err != nil {
			return err
		}
	}
	zap.S().Infow("seeded helplines", "count", len(helplines))
	return nil
}

func seedCategories(ctx context.Context, db databases.ResourceDatabase) error {
	existing, err := db.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		zap.S().Infow("resource categories already present, skipping", "count", len(existing))
		return nil
	}
	for _, c := range categories {
		if _, err := db.InsertCategory(ctx, c); err != nil {
			return err
		}
	}
	zap.S().Infow("seeded resource categories", "count", len(categories))
	return nil
}

func seedAdmin(ctx context.Context, db databases.AdminDatabase, password string) error {
	_, err := db.FindByEmail(ctx, adminEmail)
	if err == nil {
		zap.S().Infow("admin already present, skipping", "email", adminEmail)
		return nil
	}
	if !errors.Is(err, databases.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.InsertOne(ctx, models.AdminUser{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	zap.S().Infow("seeded admin", "email", adminEmail)
	return nil
}
