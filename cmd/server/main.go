package main

import (
	"context"
	"log"
	"strconv"

	"waniyilo/config"
	"waniyilo/controllers"
	"waniyilo/db"
	"waniyilo/internal/nexus"
	"waniyilo/middlewares"
	"waniyilo/routes"
	"waniyilo/services"
	"waniyilo/utils"
	"waniyilo/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer database.Close(ctx)
	log.Println("Connected to MongoDB")

	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Seed first-boot content
	utils.SeedAcademyContent(ctx, database)

	// Message fan-out: Redis Streams when configured, in-process otherwise.
	var broker nexus.Broker
	if cfg.Redis.Addr != "" {
		redisBroker, err := nexus.NewRedisBroker(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		broker = redisBroker
		log.Println("Connected to Redis")
	} else {
		broker = nexus.NewInProcessBroker()
		log.Println("Redis not configured, using in-process fan-out")
	}
	defer broker.Close()

	profiles := db.NewProfileStore(database, cfg.Academy.MatriculePrefix)
	content := db.NewContentStore(database)
	messaging := db.NewMessagingStore(database, broker)
	oracle := services.NewOracle(ctx, cfg.Gemini.ApiKey)
	hub := websocket.NewHub()

	ctrl := routes.Controllers{
		Academy:   controllers.NewAcademyController(profiles, hub, cfg.Academy.CountryCode),
		Content:   controllers.NewContentController(content),
		Messaging: controllers.NewMessagingController(messaging, hub),
		Oracle:    controllers.NewOracleController(oracle),
	}

	router := setupRouter()
	routes.Setup(router, ctrl,
		middlewares.Auth(profiles),
		middlewares.AdminOnly(),
		websocket.Handler(hub, profiles),
		func(c *gin.Context) error { return database.Ping(c.Request.Context()) },
	)

	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Matricule"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	return router
}
