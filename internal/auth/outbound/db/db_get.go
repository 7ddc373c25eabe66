package db

import (
	"context"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
)

const accountColumns = `id, phone, name, email, COALESCE(password_hash, ''), role, phone_verified_at, created_at, updated_at`

func (s *DB) scanAccount(row interface{ Scan(...any) error }) (*entity.Account, error) {
	var acc entity.Account
	var role string

	err := row.Scan(
		&acc.ID,
		&acc.Phone,
		&acc.Name,
		&acc.Email,
		&acc.PasswordHash,
		&role,
		&acc.PhoneVerifiedAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	acc.Role = entity.ParseRole(role)
	return &acc, nil
}

func (s *DB) GetAccountByID(ctx context.Context, id int64) (acc *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return s.scanAccount(row)
}

func (s *DB) GetAccountByPhone(ctx context.Context, phone string) (acc *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByPhone")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE phone = $1`, phone)
	return s.scanAccount(row)
}

// GetChallengeByTriple matches on the exact {phone, code, token_hash} triple.
// Any single-field mismatch behaves as not found.
func (s *DB) GetChallengeByTriple(ctx context.Context, phone, code, tokenHash string) (ch *entity.OtpChallenge, err error) {
	ctx, span := s.startSpan(ctx, "GetChallengeByTriple")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`SELECT phone, code, token_hash, purpose, expires_at, created_at
		 FROM otp_challenges
		 WHERE phone = $1 AND code = $2 AND token_hash = $3`,
		phone, code, tokenHash,
	)

	return s.scanChallenge(row)
}

func (s *DB) GetChallengeByPhone(ctx context.Context, phone string) (ch *entity.OtpChallenge, err error) {
	ctx, span := s.startSpan(ctx, "GetChallengeByPhone")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`SELECT phone, code, token_hash, purpose, expires_at, created_at
		 FROM otp_challenges
		 WHERE phone = $1`,
		phone,
	)

	return s.scanChallenge(row)
}

func (s *DB) scanChallenge(row interface{ Scan(...any) error }) (*entity.OtpChallenge, error) {
	var ch entity.OtpChallenge
	var purpose string

	err := row.Scan(&ch.Phone, &ch.Code, &ch.TokenHash, &purpose, &ch.ExpiresAt, &ch.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	ch.Purpose = entity.ParsePurpose(purpose)
	return &ch, nil
}
