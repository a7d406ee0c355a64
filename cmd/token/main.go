// Command token mints a bearer token for API clients using JWT_SECRET.
package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/teamsched/scheduler-backend/internal/auth"
	"github.com/teamsched/scheduler-backend/internal/config"
)

func main() {
	subject := flag.String("sub", "", "token subject, e.g. the client or operator id")
	name := flag.String("name", "", "display name carried in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime; 0 issues a token without expiry")
	flag.Parse()

	if *subject == "" {
		log.Fatal("-sub is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set, authentication is disabled")
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, *ttl).GenerateAccessToken(*subject, *name)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
