package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/rogerio-castellano/inventory-dashboard/internal/config"
	"github.com/rogerio-castellano/inventory-dashboard/internal/db"
)

// Usage: migrate [-config file] [up|down|status|redo|version|...] [args]
func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("migrate: could not load config: %v", err)
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("migrate: failed to connect to DB: %v", err)
	}
	defer database.Close()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err := db.Migrate(ctx, database, command, args...); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	fmt.Printf("goose %s success\n", command)
}
