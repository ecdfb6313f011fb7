package service

import (
	"context"

	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// authorize consults the guard. Denials are logged at info level only.
func authorize(ctx context.Context, op auth.Operation, actor *auth.Actor, target auth.Target) error {
	decision := auth.Authorize(op, actor, target)
	if decision.Allowed {
		return nil
	}
	logger.WithContext(ctx).WithOperation(string(op)).
		WithField("center_id", target.CenterID).
		Info(decision.Reason)
	return decision.Err()
}

// normalizePage clamps page and pageSize and returns limit and offset
func normalizePage(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// clampLimit applies the page size bounds to a raw limit and offset
func clampLimit(limit, offset int) (int, int) {
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
