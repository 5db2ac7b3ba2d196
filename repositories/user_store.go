package repositories

import (
	"context"

	"beatbazaar/models"
)

// UserStore is the credential store. Mutating calls made inside the function
// passed to WithinTx all join the same transaction; if the function returns
// an error nothing it wrote survives.
type UserStore interface {
	// FindByEmail returns the user with the given (lower-cased) email,
	// or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByResetToken returns the user holding exactly this reset token,
	// or ErrNotFound. Expiry is not checked here.
	FindByResetToken(ctx context.Context, token string) (*models.User, error)

	// CountAll returns the total number of user records.
	CountAll(ctx context.Context) (int64, error)

	// Create persists a new user. A username, email or reset-token
	// collision returns ErrDuplicateKey.
	Create(ctx context.Context, user *models.User) error

	// Save persists changes to an existing user.
	Save(ctx context.Context, user *models.User) error

	// WithinTx runs fn against a store bound to a single transaction and
	// commits if fn returns nil, rolls back otherwise. The transaction
	// runs serializable so concurrent registrations against an empty
	// store cannot both observe count zero.
	WithinTx(ctx context.Context, fn func(tx UserStore) error) error
}
