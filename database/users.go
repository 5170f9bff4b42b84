package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser creates or resets the admin account with the given
// password. Used at startup when -admin-password is set.
func EnsureAdminUser(ctx context.Context, db *sql.DB, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO user (username, password_hash) VALUES ('admin', ?)
		ON CONFLICT (username) DO UPDATE SET password_hash = excluded.password_hash`,
		string(hash),
	)
	return errors.Wrap(err, "upsert admin user")
}
