package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
)

var ErrUnknownRole = errors.New("unknown role")

// SetRole changes the role of the user registered under email. There is no
// API for this; operators run it against the database directly. Tokens that
// were already issued keep the old role until they expire.
func SetRole(ctx context.Context, cfg Config, email string, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return setRole(ctx, db, email, role)
}

func setRole(ctx context.Context, db store.Store, email string, role domain.Role) error {
	user, err := db.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no user registered as %s", email)
		}
		return err
	}
	return db.Users().UpdateRole(ctx, user.ID, role)
}
