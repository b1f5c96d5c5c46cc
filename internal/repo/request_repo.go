// Package repo implements the data persistence layer for the request store,
// backed by GORM. This file provides the repository functions for the
// Request model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a request is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated. In particular, inserting a request
//     whose protocol already exists surfaces the driver's duplicate-key
//     error; the service layer detects it and retries with a new protocol.
package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ouvidoria-digital/esic-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListFilter narrows ListRequests. The zero value matches everything.
type ListFilter struct {
	// Status restricts results to one review state; empty means all states.
	Status domain.Status
	// Search is matched case-insensitively as a substring against protocol,
	// applicant name, and subject (OR-combined). Empty disables the match.
	Search string
	// Offset/Limit page through results; Limit <= 0 returns the full set.
	Offset int
	Limit  int
}

// CreateRequest inserts a new Request row. The caller is responsible for
// having assigned the protocol, status, and submission timestamp.
func CreateRequest(ctx context.Context, db *gorm.DB, r *domain.Request) error {
	return db.WithContext(ctx).Create(r).Error
}

// GetRequestByProtocol fetches a single request by its exact protocol
// (case-sensitive; protocol is the primary key, so at most one row matches).
// Returns ErrNotFound when no row exists.
func GetRequestByProtocol(ctx context.Context, db *gorm.DB, protocol string) (*domain.Request, error) {
	var r domain.Request
	err := db.WithContext(ctx).
		Where("protocol = ?", protocol).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRequests returns requests matching f, ordered by submission time
// descending (most recent first). It returns an empty slice when nothing
// matches. On DB error, it returns the error.
func ListRequests(ctx context.Context, db *gorm.DB, f ListFilter) ([]domain.Request, error) {
	var out []domain.Request
	q := applyFilter(db.WithContext(ctx).Model(&domain.Request{}), f).
		Order("submitted_at desc")
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// CountRequests returns the number of requests matching f (ignoring paging).
func CountRequests(ctx context.Context, db *gorm.DB, f ListFilter) (int64, error) {
	var total int64
	err := applyFilter(db.WithContext(ctx).Model(&domain.Request{}), f).
		Count(&total).Error
	return total, err
}

// applyFilter composes the status and free-text predicates shared by
// ListRequests and CountRequests.
func applyFilter(q *gorm.DB, f ListFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pat := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(protocol) LIKE ? OR LOWER(applicant_name) LIKE ? OR LOWER(subject) LIKE ?",
			pat, pat, pat,
		)
	}
	return q
}

// UpdateResponseByProtocol records an admin response on the request
// identified by protocol: response text, attachment metadata, the new review
// state, and the response timestamp are written together. If no row matches,
// it returns ErrNotFound. On success, the freshly loaded row is returned.
func UpdateResponseByProtocol(ctx context.Context, db *gorm.DB, protocol string, response string, attachments domain.AttachmentList, status domain.Status, respondedAt time.Time) (*domain.Request, error) {
	res := db.WithContext(ctx).
		Model(&domain.Request{}).
		Where("protocol = ?", protocol).
		Updates(map[string]any{
			"status":            status,
			"admin_response":    response,
			"admin_attachments": attachments,
			"responded_at":      respondedAt,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetRequestByProtocol(ctx, db, protocol)
}

// RequestStats returns the total number of requests and a per-status
// breakdown, for the admin dashboard cards. Statuses with no rows are
// present in the map with a zero count.
func RequestStats(ctx context.Context, db *gorm.DB) (total int64, byStatus map[domain.Status]int64, err error) {
	byStatus = make(map[domain.Status]int64, 4)
	for _, st := range domain.Statuses() {
		byStatus[st] = 0
	}

	var rows []struct {
		Status domain.Status
		N      int64
	}
	err = db.WithContext(ctx).
		Model(&domain.Request{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return 0, nil, err
	}
	for _, r := range rows {
		byStatus[r.Status] = r.N
		total += r.N
	}
	return total, byStatus, nil
}
