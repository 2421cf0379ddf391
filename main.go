package main

import (
	"fmt"
	"log"

	"github.com/Bhagwat-Patil/JobWebsite/configs"
	"github.com/Bhagwat-Patil/JobWebsite/routes"
	"github.com/Bhagwat-Patil/JobWebsite/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect db failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedSuperAdmin(); err != nil {
		log.Fatalf("seed super admin failed: %v", err)
	}
	if err := configs.SeedPlans(); err != nil {
		log.Fatalf("seed plans failed: %v", err)
	}

	// ✅ Moderation feed (ws)
	hub := ws.NewModerationHub()
	go hub.Run()

	// HTTP
	r := gin.Default()

	// ✅ Register API routes
	routes.RegisterRoutes(r, cfg, hub)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
