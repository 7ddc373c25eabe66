package db

import (
	"context"
	"time"

	"github.com/thearvan/arvan-backend/internal/auth/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

func (s *DB) UpdateAccountPassword(ctx context.Context, phone, passwordHash string, now time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAccountPassword")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx,
		`UPDATE accounts SET password_hash = $2, updated_at = $3 WHERE phone = $1`,
		phone, passwordHash, now,
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

func (s *DB) UpdateAccountRole(ctx context.Context, id int64, role entity.Role, now time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAccountRole")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx,
		`UPDATE accounts SET role = $2, updated_at = $3 WHERE id = $1`,
		id, role.String(), now,
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
