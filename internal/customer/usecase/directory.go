package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/thearvan/arvan-backend/internal/customer/entity"
	"github.com/thearvan/arvan-backend/internal/pkg/goerror"
)

type DirectoryEntryOutput struct {
	ID           int64
	Name         string
	Phone        string
	AddressCount int64
	JoinedAt     time.Time
}

type DirectoryOutput struct {
	Customers []DirectoryEntryOutput
}

// Directory lists all customers with per-account aggregates. Admin only.
func (s *Usecase) Directory(ctx context.Context) (*DirectoryOutput, error) {
	ctx, span := s.startSpan(ctx, "Directory")
	defer span.End()

	if _, err := s.authenticatedAdmin(ctx); err != nil {
		return nil, err
	}

	entries, err := s.repoDB.ListDirectory(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list directory", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DirectoryOutput{
		Customers: lo.Map(entries, func(e entity.DirectoryEntry, _ int) DirectoryEntryOutput {
			return DirectoryEntryOutput{
				ID:           e.ID,
				Name:         e.Name,
				Phone:        e.Phone,
				AddressCount: e.AddressCount,
				JoinedAt:     e.JoinedAt,
			}
		}),
	}, nil
}
