package users

import (
	"context"

	"github.com/dmitrijs2005/desawisata/internal/server/models"
)

// Repository is the credential store.
type Repository interface {
	// GetActiveByEmail looks the user up by exact email among active accounts.
	GetActiveByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts an active user with the given password hash.
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
