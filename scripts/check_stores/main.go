package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"mix-store/internal/auth"
	"mix-store/internal/config"
	"mix-store/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

// Checks that the order database and the Redis store from the environment are
// reachable, and reports what they hold.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	var orders int64
	err = conn.QueryRow(ctx, "SELECT current_database(), (SELECT COUNT(*) FROM orders)").Scan(&dbName, &orders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Connected to database %s: %d orders\n", dbName, orders)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	catalogBytes, err := client.StrLen(ctx, repository.ProductsKey).Result()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Redis query failed: %v\n", err)
		os.Exit(1)
	}
	users, err := client.HLen(ctx, auth.UsersKey).Result()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Redis query failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Connected to redis %s: catalog %d bytes, %d accounts\n", cfg.Redis.Addr, catalogBytes, users)
}
