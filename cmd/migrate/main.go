package main

import (
	"log"

	"heyrube-be/internal/config"
	"heyrube-be/internal/model"
	"heyrube-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Journal{},
		&model.JournalEntry{},
		&model.Link{},
		&model.Tag{},
	)
	if err != nil {
		log.Panicf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
