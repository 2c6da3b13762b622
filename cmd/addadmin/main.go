// Command addadmin promotes an existing profile to the ADMIN archetype.
// The initiation quiz can never assign ADMIN; this tool is the
// out-of-band grant.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"waniyilo/config"
	"waniyilo/db"
	"waniyilo/models"
)

func main() {
	matricule := flag.String("matricule", "", "Matricule to promote (required)")
	configPath := flag.String("config", "config/config.yml", "Path to config file")
	flag.Parse()

	if *matricule == "" {
		fmt.Println("Error: matricule is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer database.Close(ctx)

	res, err := database.Collection("profiles").UpdateOne(ctx,
		bson.M{"matricule": *matricule},
		bson.M{"$set": bson.M{"archetype": string(models.ArchetypeAdmin)}},
	)
	if err != nil {
		log.Fatalf("Failed to promote profile: %v", err)
	}
	if res.MatchedCount == 0 {
		log.Fatalf("No profile found for matricule %s", *matricule)
	}

	fmt.Printf("Profile %s promoted to ADMIN\n", *matricule)
}
