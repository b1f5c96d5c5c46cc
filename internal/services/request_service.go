// Package services – RequestService
//
// This file implements the RequestService, which owns the lifecycle of
// citizen information requests. It validates submission input, assigns
// protocols, persists new requests, answers protocol lookups, lists requests
// for the admin dashboard, and applies admin status transitions. Service-level
// errors (ErrValidation and its wrappers, ErrRequestNotFound) are returned for
// predictable cases so handlers can map them to HTTP results consistently;
// store faults propagate as raw errors.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/ouvidoria-digital/esic-backend/internal/domain"
	"github.com/ouvidoria-digital/esic-backend/internal/protocol"
	"github.com/ouvidoria-digital/esic-backend/internal/repo"
)

// RequestRepo defines the store contract required by RequestService.
// Implementations are responsible for persistence of request records.
type RequestRepo interface {
	// CreateRequest inserts a new request row.
	CreateRequest(ctx context.Context, db *gorm.DB, r *domain.Request) error

	// GetRequestByProtocol fetches a request by its exact protocol.
	GetRequestByProtocol(ctx context.Context, db *gorm.DB, protocol string) (*domain.Request, error)

	// ListRequests returns requests matching the filter, newest first.
	ListRequests(ctx context.Context, db *gorm.DB, f repo.ListFilter) ([]domain.Request, error)

	// CountRequests returns the number of rows matching the filter.
	CountRequests(ctx context.Context, db *gorm.DB, f repo.ListFilter) (int64, error)

	// UpdateResponseByProtocol writes an admin response and status change.
	UpdateResponseByProtocol(ctx context.Context, db *gorm.DB, protocol string, response string, attachments domain.AttachmentList, status domain.Status, respondedAt time.Time) (*domain.Request, error)

	// RequestStats returns the total row count and a per-status breakdown.
	RequestStats(ctx context.Context, db *gorm.DB) (int64, map[domain.Status]int64, error)
}

// SubmitInput carries the citizen-supplied fields of a new request. All
// string fields are trimmed before validation; whitespace-only values count
// as empty.
type SubmitInput struct {
	ApplicantName string        `validate:"required"`
	Document      string        `validate:"required"`
	Email         string        `validate:"required,email"`
	Phone         string        `validate:"omitempty"`
	TargetAgency  domain.Agency `validate:"required"`
	Subject       string        `validate:"omitempty"`
	Description   string        `validate:"required"`
}

// ListInput narrows List. Status accepts a concrete review state, or one of
// "", "all", "todos" for no restriction. Limit <= 0 returns the full set.
type ListInput struct {
	Status string
	Search string
	Offset int
	Limit  int
}

// ResponseInput carries an admin response: free text, attachment metadata,
// and the state the request moves to. At least one of Response (non-blank)
// or Attachments must be present.
type ResponseInput struct {
	Response    string
	Attachments domain.AttachmentList
	NewStatus   string
}

// DashboardStats summarizes the request table for the admin dashboard.
type DashboardStats struct {
	Total    int64                   `json:"total"`
	ByStatus map[domain.Status]int64 `json:"by_status"`
}

// RequestService provides the lifecycle operations around citizen requests.
// It is stateless between calls; every operation takes its inputs explicitly
// and issues at most the store calls it documents.
type RequestService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the request repository used by this service.
	Repo RequestRepo

	// ProtocolRetries bounds how many fresh protocols Submit tries when an
	// insert collides on the protocol primary key.
	ProtocolRetries int

	validate *validator.Validate
}

// NewRequestService constructs a RequestService with sane defaults.
func NewRequestService(db *gorm.DB, r RequestRepo) *RequestService {
	return &RequestService{
		DB:              db,
		Repo:            r,
		ProtocolRetries: 3,
		validate:        validator.New(),
	}
}

// Submit validates the input, assigns a fresh protocol, and persists the
// request with status "Em análise" and the current UTC submission time.
// On success the persisted record (including its protocol) is returned.
//
// A duplicate-protocol insert is retried with a newly generated protocol up
// to ProtocolRetries times; a discarded protocol is never reused. Any other
// store fault propagates unchanged and nothing is retained.
func (s *RequestService) Submit(ctx context.Context, in SubmitInput) (*domain.Request, error) {
	in.ApplicantName = strings.TrimSpace(in.ApplicantName)
	in.Document = strings.TrimSpace(in.Document)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Description = strings.TrimSpace(in.Description)

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, validationf("field %s failed on %s", verrs[0].Field(), verrs[0].Tag())
		}
		return nil, validationf("%v", err)
	}
	if !in.TargetAgency.Valid() {
		return nil, validationf("unknown target agency %q", in.TargetAgency)
	}

	now := time.Now().UTC()
	attempts := s.ProtocolRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		r := &domain.Request{
			Protocol:      protocol.Generate(),
			ApplicantName: in.ApplicantName,
			Document:      in.Document,
			Email:         in.Email,
			Phone:         in.Phone,
			TargetAgency:  in.TargetAgency,
			Subject:       in.Subject,
			Description:   in.Description,
			Status:        domain.StatusEmAnalise,
			SubmittedAt:   now,
		}
		err := s.Repo.CreateRequest(ctx, s.DB, r)
		if err == nil {
			return r, nil
		}
		lastErr = err
		if !isDuplicate(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

// Lookup returns the request identified by protocol (exact match). A miss is
// reported as ErrRequestNotFound so callers can distinguish "no such
// protocol" from a store fault.
func (s *RequestService) Lookup(ctx context.Context, proto string) (*domain.Request, error) {
	proto = strings.TrimSpace(proto)
	if proto == "" {
		return nil, validationf("protocol is required")
	}

	r, err := s.Repo.GetRequestByProtocol(ctx, s.DB, proto)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return r, nil
}

// List returns requests matching the filter, newest first, plus the total
// match count (useful when the caller pages). An unknown status string is a
// validation error; "", "all" and "todos" lift the status restriction.
func (s *RequestService) List(ctx context.Context, in ListInput) ([]domain.Request, int64, error) {
	f := repo.ListFilter{
		Search: strings.TrimSpace(in.Search),
		Offset: in.Offset,
		Limit:  in.Limit,
	}

	switch strings.TrimSpace(in.Status) {
	case "", "all", "todos":
		// no status restriction
	default:
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, 0, validationf("unknown status %q", in.Status)
		}
		f.Status = st
	}

	total, err := s.Repo.CountRequests(ctx, s.DB, f)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Request{}, 0, nil
	}

	items, err := s.Repo.ListRequests(ctx, s.DB, f)
	return items, total, err
}

// RecordResponse applies an admin response to the request identified by
// protocol: response text, attachment metadata, the new status, and the
// response timestamp are written together. The new status may be any of the
// four enumerated values; there is no enforced progression, so re-answering
// an already answered request is allowed.
//
// Validation happens before any store call: the status must parse, and
// either a non-blank response or at least one attachment must be present
// (ErrEmptyResponse otherwise).
func (s *RequestService) RecordResponse(ctx context.Context, proto string, in ResponseInput) (*domain.Request, error) {
	proto = strings.TrimSpace(proto)
	if proto == "" {
		return nil, validationf("protocol is required")
	}

	st, err := domain.ParseStatus(in.NewStatus)
	if err != nil {
		return nil, validationf("unknown status %q", in.NewStatus)
	}

	response := strings.TrimSpace(in.Response)
	if response == "" && len(in.Attachments) == 0 {
		return nil, ErrEmptyResponse
	}

	r, err := s.Repo.UpdateResponseByProtocol(ctx, s.DB, proto, response, in.Attachments, st, time.Now().UTC())
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return r, nil
}

// Stats returns the dashboard aggregate: total requests and per-status
// counts.
func (s *RequestService) Stats(ctx context.Context) (*DashboardStats, error) {
	total, byStatus, err := s.Repo.RequestStats(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{Total: total, ByStatus: byStatus}, nil
}

// isNotFound treats repo-level not-found sentinels as "not found" in a
// driver-agnostic way.
func isNotFound(err error) bool {
	if errors.Is(err, repo.ErrNotFound) {
		return true
	}
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
