package db

import (
	"context"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
)

func (s *DB) CreateChallenge(ctx context.Context, in entity.OtpChallenge) (err error) {
	ctx, span := s.startSpan(ctx, "CreateChallenge")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx,
		`INSERT INTO otp_challenges (phone, code, token_hash, purpose, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		in.Phone, in.Code, in.TokenHash, in.Purpose.String(), in.ExpiresAt, in.CreatedAt,
	)

	err = s.mapError(err)
	return err
}

// UpsertVerifiedAccount creates the account on first exchange or marks an
// existing one verified, returning the stored row either way.
func (s *DB) UpsertVerifiedAccount(ctx context.Context, in entity.UpsertVerifiedAccount) (acc *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "UpsertVerifiedAccount")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`INSERT INTO accounts (id, phone, name, email, role, phone_verified_at, created_at, updated_at)
		 VALUES ($1, $2, '', '', 'user', $3, $3, $3)
		 ON CONFLICT (phone) DO UPDATE SET phone_verified_at = $3, updated_at = $3
		 RETURNING `+accountColumns,
		in.ID, in.Phone, in.VerifiedAt,
	)

	return s.scanAccount(row)
}
