//go:build !cli
// +build !cli

package main

import (
	"fmt"
	"log"

	"github.com/common-nighthawk/go-figure"

	"supplysense/app"
	"supplysense/config"
	"supplysense/core/events"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	config.InitRedis()
	log.Println(config.PingRedis())
	events.Init(config.RedisClient)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	e := app.NewServer(db)

	figure.NewFigure(config.AppConfig.AppName, "standard", true).Print()
	fmt.Println()
	port := config.AppConfig.Port
	log.Printf("Server running on :%s (REST /api, GraphQL /graphql)", port)
	e.Logger.Fatal(e.Start(":" + port))
}
