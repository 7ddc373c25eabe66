package db

import (
	"context"
	"time"

	"github.com/thearvan/arvan-backend/internal/notification/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

func (s *DB) CreateEmailLog(ctx context.Context, in entity.EmailLog) (err error) {
	ctx, span := s.startSpan(ctx, "CreateEmailLog")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx,
		`INSERT INTO email_logs (id, recipient, subject, status, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		in.ID, in.To, in.Subject, in.Status.String(), in.Metadata, in.CreatedAt, in.UpdatedAt,
	)

	err = s.mapError(err)
	return err
}

func (s *DB) ListEmailLogs(ctx context.Context, limit, offset int32) (logs []entity.EmailLog, err error) {
	ctx, span := s.startSpan(ctx, "ListEmailLogs")
	defer func() { s.endSpan(span, err) }()

	rows, queryErr := s.conn.Query(ctx,
		`SELECT id, recipient, subject, status, metadata, created_at, updated_at
		 FROM email_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if queryErr != nil {
		err = s.mapError(queryErr)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			l      entity.EmailLog
			status string
		)
		if scanErr := rows.Scan(&l.ID, &l.To, &l.Subject, &status, &l.Metadata, &l.CreatedAt, &l.UpdatedAt); scanErr != nil {
			err = s.mapError(scanErr)
			return nil, err
		}
		l.Status = entity.ParseEmailStatus(status)
		logs = append(logs, l)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		err = s.mapError(rowsErr)
		return nil, err
	}

	return logs, nil
}

func (s *DB) UpdateEmailLogStatus(ctx context.Context, id int64, status entity.EmailStatus, now time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateEmailLogStatus")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx,
		`UPDATE email_logs SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status.String(), now,
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

func (s *DB) DeleteEmailLog(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteEmailLog")
	defer func() { s.endSpan(span, err) }()

	tag, execErr := s.conn.Exec(ctx, `DELETE FROM email_logs WHERE id = $1`, id)
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
