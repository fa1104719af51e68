package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"go-enterprise-ops/internal/model"
	"go-enterprise-ops/pkg/database"
)

// Operational tool: reset an employee's password directly in the database,
// e.g. when the super admin locks themselves out.
func main() {
	email := flag.String("email", "superadmin@example.com", "employee email")
	password := flag.String("password", "ChangeMe@123", "new password")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()

	var employee model.Employee
	if err := db.Where("employee_email = ?", *email).First(&employee).Error; err != nil {
		log.Fatalf("Employee %s not found in database: %v", *email, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.Model(&employee).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
