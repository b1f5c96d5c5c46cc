// Admin HTTP handlers.
//
// This file exposes the operator endpoints, all behind bearer-token auth:
//   - GET /admin/requests                       (list, filter, paginate)
//   - GET /admin/requests/stats                 (dashboard counters)
//   - PUT /admin/requests/{protocol}/response   (record a response)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ouvidoria-digital/esic-backend/internal/domain"
	"github.com/ouvidoria-digital/esic-backend/internal/http/middleware"
	"github.com/ouvidoria-digital/esic-backend/internal/services"
)

// RespondBody is the JSON payload for recording an admin response.
type RespondBody struct {
	// Status is the state the request moves to.
	Status string `json:"status" binding:"required" example:"Concluído"`
	// Response is the answer text shown to the citizen.
	Response string `json:"response" example:"Segue em anexo o relatório solicitado."`
	// Attachments lists response file metadata.
	Attachments []domain.Attachment `json:"attachments"`
}

// ListRequestsAdmin godoc
// @ID          listRequestsAdmin
// @Summary     List requests (admin)
// @Description Returns requests newest first, optionally filtered by status and a free-text search over protocol, applicant name, and subject.
// @Tags        Admin
// @Produce     json
// @Security    AdminToken
//
// @Param       status     query  string  false  "Status filter ('all'/'todos'/empty for every state)"  example(Em análise)
// @Param       q          query  string  false  "Case-insensitive substring search"                    example(merenda)
// @Param       page       query  int     false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int     false  "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListRequestsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown status"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/requests [get]
func (h *Handlers) ListRequestsAdmin(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), services.ListInput{
		Status: c.Query("status"),
		Search: c.Query("q"),
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListRequestsResponse{
		Requests: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// RequestStats godoc
// @ID          requestStats
// @Summary     Dashboard statistics (admin)
// @Description Returns the total request count and a per-status breakdown.
// @Tags        Admin
// @Produce     json
// @Security    AdminToken
//
// @Success     200  {object}  services.DashboardStats
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/requests/stats [get]
func (h *Handlers) RequestStats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, stats)
}

// RespondRequest godoc
// @ID          respondRequest
// @Summary     Record a response (admin)
// @Description Writes the response text, attachment metadata, new status, and response timestamp on the request, then returns the updated record.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    AdminToken
//
// @Param       protocol  path  string                 true  "Protocol"  example(20260828-A1B2C3)
// @Param       body      body  handlers.RespondBody   true  "Response payload"
//
// @Success     200  {object}  domain.Request
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload or status"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid credentials"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown protocol"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /admin/requests/{protocol}/response [put]
func (h *Handlers) RespondRequest(c *gin.Context) {
	var body RespondBody
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.svc.RecordResponse(c.Request.Context(), c.Param("protocol"), services.ResponseInput{
		Response:    body.Response,
		Attachments: domain.AttachmentList(body.Attachments),
		NewStatus:   body.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no request found for this protocol")
		case errors.Is(err, services.ErrValidation):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
		}
		return
	}

	responsesRecorded.WithLabelValues(string(r.Status)).Inc()
	middleware.LoggerFrom(c).Info().
		Str("protocol", r.Protocol).
		Str("status", string(r.Status)).
		Msg("response recorded")

	ok(c, http.StatusOK, r)
}
