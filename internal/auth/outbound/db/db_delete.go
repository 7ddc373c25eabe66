package db

import (
	"context"
	"time"
)

func (s *DB) DeleteChallengeByPhone(ctx context.Context, phone string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteChallengeByPhone")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `DELETE FROM otp_challenges WHERE phone = $1`, phone)
	err = s.mapError(err)
	return err
}

// DeleteExpiredChallenges removes rows whose expiry has passed. Housekeeping
// only; expiry is enforced by token verification regardless.
func (s *DB) DeleteExpiredChallenges(ctx context.Context, before time.Time) (deleted int64, err error) {
	ctx, span := s.startSpan(ctx, "DeleteExpiredChallenges")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx, `DELETE FROM otp_challenges WHERE expires_at < $1`, before)
	if execErr != nil {
		err = s.mapError(execErr)
		return 0, err
	}

	return tag.RowsAffected(), nil
}
