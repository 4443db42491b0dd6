package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/quota"
	"codeberg.org/quickai/server/quickai/users"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "", "user id to mint a token for (random when empty)")
	plan := flag.String("plan", string(quota.PlanFree), "plan to assign: free or premium")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if *userID == "" {
		*userID = "test_" + uuid.New().String()
	}

	repo := users.NewRepository(dbPool)

	user, err := repo.FindOrCreate(ctx, *userID)
	if err != nil {
		log.Fatalf("Failed to create test user: %v", err)
	}

	if target := quota.ParsePlan(*plan); target != user.Plan {
		if err := repo.SetPlan(ctx, user.ID, target); err != nil {
			log.Fatalf("Failed to set plan: %v", err)
		}

		user.Plan = target
	}

	fmt.Printf("Test user: %s (plan: %s, free usage: %d)\n", user.ID, user.Plan, user.FreeUsage)

	token, err := auth.GenerateJWT(user.ID)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\nTest JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
