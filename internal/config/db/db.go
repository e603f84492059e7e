package db

import (
	"fmt"
	"log"

	"github.com/linskybing/bugtrack-go/internal/config"
	"github.com/linskybing/bugtrack-go/internal/domain/project"
	"github.com/linskybing/bugtrack-go/internal/domain/ticket"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	log.Println("Database connected")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates or updates the schema for every domain model.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&ticket.Ticket{},
	)
}
