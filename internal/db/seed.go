package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type SeedUser struct {
	Username string
	Password string
	FullName string
	Role     string
}

// EnsureSeedUsers inserts the bootstrap users if they are missing so a
// fresh deployment always has a management login.
func EnsureSeedUsers(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	seeds := []SeedUser{
		{Username: "admin", Password: "admin123", FullName: "System Administrator", Role: "management"},
		{Username: "accountant", Password: "acc123", FullName: "Staff Accountant", Role: "accounting"},
	}

	for _, seed := range seeds {
		exists, err := userExists(ctx, pool, timeout, seed.Username)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		ctxInsert, cancel := context.WithTimeout(ctx, timeout)
		_, err = pool.Exec(ctxInsert, `
			INSERT INTO users (username, full_name, role, password_hash)
			VALUES ($1, $2, $3, $4)
		`, seed.Username, seed.FullName, seed.Role, string(hash))
		cancel()
		if err != nil {
			return fmt.Errorf("insert seed user %s: %w", seed.Username, err)
		}
	}

	return nil
}

func userExists(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, username string) (bool, error) {
	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := pool.QueryRow(ctxCheck, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
