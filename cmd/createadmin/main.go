package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rogerio-castellano/inventory-dashboard/internal/auth"
	"github.com/rogerio-castellano/inventory-dashboard/internal/config"
	"github.com/rogerio-castellano/inventory-dashboard/internal/db"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// Usage: createadmin -username admin -password secret
func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("createadmin: could not load config: %v", err)
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("createadmin: failed to connect to DB: %v", err)
	}
	defer database.Close()

	svc := auth.NewAuthService(
		repo.NewPostgresUserRepository(database, cfg.Database.Timeout),
		auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL),
	)

	user, err := svc.CreateUser(ctx, *username, *password, models.RoleAdmin)
	if errors.Is(err, auth.ErrUserExists) {
		fmt.Printf("admin %q already exists\n", *username)
		return
	}
	if err != nil {
		log.Fatalf("createadmin: %v", err)
	}
	fmt.Printf("admin %q created with id %d\n", user.Username, user.ID)
}
