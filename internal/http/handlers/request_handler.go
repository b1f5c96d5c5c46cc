// Citizen-facing HTTP handlers.
//
// This file exposes the public REST endpoints of the portal:
//   - POST /requests             (submit a new information request)
//   - GET  /requests/{protocol}  (look up a request by protocol)
//
// Handlers are transport-thin: they bind input, call the application service,
// and translate results into HTTP responses. Field-level validation lives in
// the service so CLI or future transports get the same rules.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ouvidoria-digital/esic-backend/internal/domain"
	"github.com/ouvidoria-digital/esic-backend/internal/http/middleware"
	"github.com/ouvidoria-digital/esic-backend/internal/services"
	"github.com/ouvidoria-digital/esic-backend/internal/utils"
)

//
// Service contract (context-aware)
//

// RequestService defines the request lifecycle operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type RequestService interface {
	// Submit validates and persists a new request, assigning its protocol.
	Submit(ctx context.Context, in services.SubmitInput) (*domain.Request, error)
	// Lookup fetches a request by its exact protocol.
	Lookup(ctx context.Context, protocol string) (*domain.Request, error)
	// List returns matching requests (newest first) and the total match count.
	List(ctx context.Context, in services.ListInput) ([]domain.Request, int64, error)
	// RecordResponse applies an admin response and status change.
	RecordResponse(ctx context.Context, protocol string, in services.ResponseInput) (*domain.Request, error)
	// Stats returns the dashboard aggregate.
	Stats(ctx context.Context) (*services.DashboardStats, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for requests and static content.
type Handlers struct {
	svc RequestService
}

// New constructs a Handlers instance bound to the given service.
func New(svc RequestService) *Handlers {
	return &Handlers{svc: svc}
}

//
// Domain metrics
//

var (
	// requestsSubmitted counts accepted submissions per target agency.
	requestsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "esic_requests_submitted_total",
			Help: "Total number of accepted information requests.",
		},
		[]string{"agency"},
	)

	// responsesRecorded counts admin responses per resulting status.
	responsesRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "esic_responses_recorded_total",
			Help: "Total number of admin responses recorded.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(requestsSubmitted, responsesRecorded)
}

//
// DTOs
//

// SubmitRequestBody is the JSON payload for submitting a request.
type SubmitRequestBody struct {
	// ApplicantName is the citizen's full name.
	ApplicantName string `json:"applicant_name" binding:"required" example:"Maria da Silva"`
	// Document is the citizen's CPF or CNPJ.
	Document string `json:"document" binding:"required" example:"123.456.789-09"`
	// Email receives status notifications.
	Email string `json:"email" binding:"required" example:"maria@example.com"`
	// Phone is optional contact information.
	Phone string `json:"phone" example:"(11) 99999-0000"`
	// TargetAgency selects the public body the request is addressed to.
	TargetAgency string `json:"target_agency" binding:"required" example:"secretaria-educacao"`
	// Subject is a short topic line.
	Subject string `json:"subject" example:"Merenda escolar"`
	// Description is the information being requested.
	Description string `json:"description" binding:"required" example:"Solicito os gastos com merenda escolar em 2025."`
}

// Pagination carries paging metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListRequestsResponse wraps a page of requests and pagination information.
type ListRequestsResponse struct {
	Requests   []domain.Request `json:"requests"`
	Pagination Pagination       `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params,
// returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// SubmitRequest godoc
// @ID          submitRequest
// @Summary     Submit an information request
// @Description Registers a new request and returns the created record, including its protocol.
// @Tags        Requests
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SubmitRequestBody  true  "Submission payload"
//
// @Success     201  {object}  domain.Request
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests [post]
func (h *Handlers) SubmitRequest(c *gin.Context) {
	var body SubmitRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.svc.Submit(c.Request.Context(), services.SubmitInput{
		ApplicantName: body.ApplicantName,
		Document:      body.Document,
		Email:         body.Email,
		Phone:         body.Phone,
		TargetAgency:  domain.Agency(body.TargetAgency),
		Subject:       body.Subject,
		Description:   body.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, err.Error())
		return
	}

	requestsSubmitted.WithLabelValues(string(r.TargetAgency)).Inc()
	middleware.LoggerFrom(c).Info().
		Str("protocol", r.Protocol).
		Str("agency", string(r.TargetAgency)).
		Msg("request submitted")

	ok(c, http.StatusCreated, r)
}

// LookupRequest godoc
// @ID          lookupRequest
// @Summary     Look up a request by protocol
// @Description Returns the full request record for the given protocol, including any admin response.
// @Tags        Requests
// @Produce     json
//
// @Param       protocol  path  string  true  "Protocol"  example(20260828-A1B2C3)
//
// @Success     200  {object}  domain.Request
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown protocol"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests/{protocol} [get]
func (h *Handlers) LookupRequest(c *gin.Context) {
	r, err := h.svc.Lookup(c.Request.Context(), c.Param("protocol"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no request found for this protocol")
		case errors.Is(err, services.ErrValidation):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, r)
}
