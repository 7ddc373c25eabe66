package db

import (
	"context"
	"time"

	"github.com/thearvan/arvan-backend/internal/customer/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

func (s *DB) UpdateProfile(ctx context.Context, in entity.ProfileUpdate, now time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProfile")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx,
		`UPDATE accounts SET
			name = COALESCE(NULLIF($2, ''), name),
			email = COALESCE(NULLIF($3, ''), email),
			updated_at = $4
		 WHERE id = $1`,
		in.AccountID, in.Name, in.Email, now,
	)
	if execErr != nil {
		err = s.mapError(execErr)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) CreateAddress(ctx context.Context, in entity.Address) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAddress")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx,
		`INSERT INTO addresses (id, account_id, street, city, state, pincode, country, phone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		in.ID, in.AccountID, in.Street, in.City, in.State,
		in.Pincode, in.Country, in.Phone, in.CreatedAt, in.UpdatedAt,
	)

	err = s.mapError(err)
	return err
}

// UpdateAddress is scoped by account id so customers cannot touch rows they
// do not own.
func (s *DB) UpdateAddress(ctx context.Context, in entity.Address) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAddress")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx,
		`UPDATE addresses SET
			street = $3, city = $4, state = $5, pincode = $6, country = $7, phone = $8, updated_at = $9
		 WHERE id = $1 AND account_id = $2`,
		in.ID, in.AccountID, in.Street, in.City, in.State,
		in.Pincode, in.Country, in.Phone, in.UpdatedAt,
	)
	if execErr != nil {
		err = s.mapError(execErr)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) DeleteAddress(ctx context.Context, accountID, addressID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteAddress")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx,
		`DELETE FROM addresses WHERE id = $1 AND account_id = $2`,
		addressID, accountID,
	)
	if execErr != nil {
		err = s.mapError(execErr)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
