package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thearvan/arvan-backend/internal/auth/outbound/db"
	"github.com/thearvan/arvan-backend/internal/pkg/instrument"
	"github.com/thearvan/arvan-backend/internal/pkg/router"
)

// AccountResolver loads accounts for the authentication middleware.
type AccountResolver struct {
	db *db.DB
}

func NewAccountResolver(conn *pgxpool.Pool, ins instrument.Instrumentation) *AccountResolver {
	return &AccountResolver{db: db.NewDB(conn, ins)}
}

func (r *AccountResolver) Resolve(ctx context.Context, accountID int64) (*router.Identity, error) {
	acc, err := r.db.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &router.Identity{
		ID:    acc.ID,
		Phone: acc.Phone,
		Role:  acc.Role.String(),
	}, nil
}
