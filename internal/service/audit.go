package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"agrotrack/internal/models"
	"agrotrack/internal/repository"
)

// AuditService exposes the append-only operation trail with filtering.
type AuditService struct {
	audit repository.AuditRepo
}

func NewAuditService(audit repository.AuditRepo) *AuditService {
	return &AuditService{audit: audit}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	op := strings.TrimSpace(strings.ToUpper(f.Op))
	return from, to, op, nil
}

func (s *AuditService) List(ctx context.Context, f LogFilter) ([]models.AuditEntry, error) {
	from, to, op, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.audit.List(ctx, from, to, op)
}
