package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/jcgarcia/fintrack/config"
	"github.com/jcgarcia/fintrack/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d username=%s password=%s\n", userID, username, password)

	var profileID int64
	err = db.QueryRow(`
		INSERT INTO profile (user_id, name, phone, position_or_company, marital_status, children, initial_balance, assets)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $7::numeric)
		RETURNING id
	`, userID, "Personal", "555-0100", "Acme Corp", "single", 0, "500.00").Scan(&profileID)
	if err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%d initial_balance=500.00\n", profileID)

	if _, err := db.Exec(`
		INSERT INTO income (profile_id, date, description, amount, type)
		VALUES ($1, CURRENT_DATE, 'Monthly salary', $2::numeric, 'salary')
	`, profileID, "250.00"); err != nil {
		log.Fatalf("failed to seed income: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO expenses (profile_id, date, description, amount, type)
		VALUES ($1, CURRENT_DATE, 'Groceries', $2::numeric, 'food')
	`, profileID, "75.50"); err != nil {
		log.Fatalf("failed to seed expense: %v", err)
	}

	// Resync the cached assets with the freshly seeded ledger rows.
	var assets string
	err = db.QueryRow(`
		UPDATE profile SET assets = initial_balance
			+ COALESCE((SELECT SUM(amount) FROM income WHERE profile_id = $1), 0)
			- COALESCE((SELECT SUM(amount) FROM expenses WHERE profile_id = $1), 0),
			updated_at = now()
		WHERE id = $1
		RETURNING assets::text
	`, profileID).Scan(&assets)
	if err != nil {
		log.Fatalf("failed to resync assets: %v", err)
	}
	fmt.Printf("seeded ledger rows, assets=%s\n", assets)
}
