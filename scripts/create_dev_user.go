package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type User struct {
	ID        uint    `gorm:"primaryKey"`
	Email     string  `gorm:"uniqueIndex;not null"`
	Name      string  `gorm:"not null"`
	Password  *string
	GoogleID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func main() {
	// Parse command line flags
	email := flag.String("email", "dev@pizza.local", "Email for the dev account")
	password := flag.String("password", "dev-secret-123", "Password for the dev account")
	name := flag.String("name", "Dev User", "Display name for the dev account")
	dbPath := flag.String("db", "test.sqlite", "Path to the sqlite database file")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Check if the user already exists
	var existing User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		fmt.Println("Development user already exists!")
		fmt.Printf("Email: %s\n", *email)
		fmt.Printf("User ID: %d\n", existing.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	hashed := string(hash)
	user := User{
		Email:     *email,
		Name:      *name,
		Password:  &hashed,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Println("✓ Development user created!")
	fmt.Printf("Email: %s\n", *email)
	fmt.Printf("Password: %s\n", *password)
	fmt.Printf("User ID: %d\n", user.ID)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:8080/auth/login \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", *email, *password)
}
