// seedadmin inserts the bootstrap admin. The API refuses to delete the last
// admin, so this is the only way the first one ever appears.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/admins"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		log.Fatal("usage: seedadmin <email>")
	}
	email := os.Args[1]

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	a, err := admins.NewService(db).Create(context.Background(), email)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("✓ admin %s created (id=%s)", a.Email, a.ID)
}
