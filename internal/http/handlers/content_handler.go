// Static content handlers.
//
// This file serves the informational pages that accompany the request
// workflow:
//   - GET /content/faq          (frequently asked questions)
//   - GET /content/legislation  (access-to-information statutes)
//
// The content is static per build, so both endpoints send long-lived cache
// headers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ouvidoria-digital/esic-backend/internal/content"
)

// FAQResponse wraps the FAQ catalog.
type FAQResponse struct {
	Categories []content.FAQCategory `json:"categories"`
}

// LegislationResponse wraps the legislation catalog.
type LegislationResponse struct {
	Sections []content.LegislationSection `json:"sections"`
}

// GetFAQ godoc
// @ID          getFAQ
// @Summary     FAQ catalog
// @Description Returns the frequently asked questions, grouped by category, with answers in Markdown and rendered HTML.
// @Tags        Content
// @Produce     json
//
// @Success     200  {object}  handlers.FAQResponse
// @Router      /content/faq [get]
func (h *Handlers) GetFAQ(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	ok(c, http.StatusOK, FAQResponse{Categories: content.FAQ()})
}

// GetLegislation godoc
// @ID          getLegislation
// @Summary     Legislation catalog
// @Description Returns the access-to-information statutes grouped by government sphere.
// @Tags        Content
// @Produce     json
//
// @Success     200  {object}  handlers.LegislationResponse
// @Router      /content/legislation [get]
func (h *Handlers) GetLegislation(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	ok(c, http.StatusOK, LegislationResponse{Sections: content.Legislation()})
}
