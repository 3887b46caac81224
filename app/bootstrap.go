package app

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/google/uuid"

	"sdh_inventory/db"
	"sdh_inventory/models"
)

// HashPassword hashes a password as SHA-256 hex, matching the hashes the
// unit's existing user records were provisioned with.
func HashPassword(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}

// BootstrapFirstAdmin creates an initial admin account when the user table
// is empty. The one-time password is generated and printed to the log; it
// is expected to be changed right after the first login.
func BootstrapFirstAdmin(ctx context.Context, cfg Config, repo *db.Repo) {
	if cfg.BootstrapAdmin == "" {
		return
	}
	n, err := repo.CountUsers(ctx)
	if err != nil {
		log.Printf("bootstrap: count users: %v", err)
		return
	}
	if n > 0 {
		return
	}

	buf := make([]byte, 12)
	rand.Read(buf)
	password := hex.EncodeToString(buf)

	u := &models.User{
		ID:           uuid.NewString(),
		Username:     cfg.BootstrapAdmin,
		DisplayName:  cfg.BootstrapAdmin,
		PasswordHash: HashPassword(password),
		Role:         models.RoleAdmin,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		log.Printf("bootstrap admin failed: %v", err)
		return
	}

	log.Printf("[BOOTSTRAP] No users found, created admin %q", cfg.BootstrapAdmin)
	log.Printf("[BOOTSTRAP] One-time password: %s", password)
}
