package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Small helper for bootstrapping a staff account: prints the bcrypt hash to
// insert into the users table. Usage: go run hash_gen.go <password>
func main() {
	password := "staff"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("Hashed Password: %s\n", string(hashedPassword))
}

// INSERT INTO users (username, password_hash, role, created_at, updated_at)
// VALUES ('staff', '<hash>', 'staff', strftime('%Y-%m-%d %H:%M:%S', 'now'), strftime('%Y-%m-%d %H:%M:%S', 'now'));
