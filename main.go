package main

import (
	"log"
	"os"

	"trackventory/app"
	"trackventory/config"
	"trackventory/db"
	"trackventory/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	if os.Getenv("SEED_DB") == "true" {
		db.Seed(application.DB)
	}

	r := application.Router

	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
