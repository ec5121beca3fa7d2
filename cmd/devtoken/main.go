// Command devtoken prints a bearer token for local development.
// Sign-up and login are handled outside this service; this tool stands in
// for them by signing a token with JWT_SECRET.
//
//	go run ./cmd/devtoken -user 6f1c1f0e-8d1b-4b8e-9a57-2f43f4a0c001 -ttl 24h
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/pkordes/travel-planner/internal/middleware"
)

func main() {
	userFlag := flag.String("user", "", "user UUID to put in the token subject (random when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	userID := uuid.New()
	if *userFlag != "" {
		id, err := uuid.Parse(*userFlag)
		if err != nil {
			slog.Error("invalid -user", "error", err)
			os.Exit(1)
		}
		userID = id
	}

	token, err := middleware.IssueToken([]byte(secret), userID, *ttl)
	if err != nil {
		slog.Error("could not sign token", "error", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "user %s\n", userID)
	fmt.Println(token)
}
