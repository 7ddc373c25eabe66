package db

import (
	"context"

	"github.com/thearvan/arvan-backend/internal/customer/entity"
)

func (s *DB) GetProfile(ctx context.Context, accountID int64) (profile *entity.Profile, err error) {
	ctx, span := s.startSpan(ctx, "GetProfile")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`SELECT id, name, phone, email, created_at FROM accounts WHERE id = $1`,
		accountID,
	)

	var p entity.Profile
	if scanErr := row.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.CreatedAt); scanErr != nil {
		err = s.mapError(scanErr)
		return nil, err
	}

	return &p, nil
}

func (s *DB) ListAddresses(ctx context.Context, accountID int64) (addresses []entity.Address, err error) {
	ctx, span := s.startSpan(ctx, "ListAddresses")
	defer func() { s.endSpan(span, err) }()

	rows, queryErr := s.conn.Query(ctx,
		`SELECT id, account_id, street, city, state, pincode, country, phone, created_at, updated_at
		 FROM addresses WHERE account_id = $1 ORDER BY created_at DESC`,
		accountID,
	)
	if queryErr != nil {
		err = s.mapError(queryErr)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a entity.Address
		if scanErr := rows.Scan(
			&a.ID, &a.AccountID, &a.Street, &a.City, &a.State,
			&a.Pincode, &a.Country, &a.Phone, &a.CreatedAt, &a.UpdatedAt,
		); scanErr != nil {
			err = s.mapError(scanErr)
			return nil, err
		}
		addresses = append(addresses, a)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		err = s.mapError(rowsErr)
		return nil, err
	}

	return addresses, nil
}

func (s *DB) ListDirectory(ctx context.Context) (entries []entity.DirectoryEntry, err error) {
	ctx, span := s.startSpan(ctx, "ListDirectory")
	defer func() { s.endSpan(span, err) }()

	rows, queryErr := s.conn.Query(ctx,
		`SELECT a.id, a.name, a.phone, COUNT(ad.id), a.created_at
		 FROM accounts a
		 LEFT JOIN addresses ad ON ad.account_id = a.id
		 GROUP BY a.id, a.name, a.phone, a.created_at
		 ORDER BY a.created_at DESC`,
	)
	if queryErr != nil {
		err = s.mapError(queryErr)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e entity.DirectoryEntry
		if scanErr := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.AddressCount, &e.JoinedAt); scanErr != nil {
			err = s.mapError(scanErr)
			return nil, err
		}
		entries = append(entries, e)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		err = s.mapError(rowsErr)
		return nil, err
	}

	return entries, nil
}
