// Standalone GraphQL server, run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	graphqlApi "supplysense/api/graphql"
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
		log.Fatal("db:", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	graphqlApi.RegisterGraphQLRoutes(e, db)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("SupplySense GQL", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := config.AppConfig.Port
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
