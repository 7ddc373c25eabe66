package usecase

import (
	"context"
	"log/slog"
)

// SweepExpiredChallenges removes challenges past their expiry. Expiry is
// enforced at verification time regardless; this keeps the table small.
func (s *Usecase) SweepExpiredChallenges(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "SweepExpiredChallenges")
	defer span.End()

	deleted, err := s.repoDB.DeleteExpiredChallenges(ctx, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete expired challenges", "error", err)
		return err
	}

	if deleted > 0 {
		slog.InfoContext(ctx, "swept expired otp challenges", "deleted", deleted)
	}

	return nil
}
