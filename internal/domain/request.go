// Package domain defines the persistence model for citizen information
// requests ("solicitações"). The Request type is mapped with GORM and forms
// the core data layer of the e-SIC backend.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Status is the review state of a request. It is a closed enumeration: the
// values below are the only ones ever written to the database, and they match
// the display strings shown to citizens.
type Status string

const (
	// StatusEmAnalise is the initial state of every request.
	StatusEmAnalise Status = "Em análise"
	// StatusRespondido marks a request that received an answer.
	StatusRespondido Status = "Respondido"
	// StatusConcluido marks a request whose handling is finished.
	StatusConcluido Status = "Concluído"
	// StatusNegado marks a request whose access was denied.
	StatusNegado Status = "Negado"
)

// Statuses returns all valid review states in display order.
func Statuses() []Status {
	return []Status{StatusEmAnalise, StatusRespondido, StatusConcluido, StatusNegado}
}

// Valid reports whether s is one of the four enumerated states.
func (s Status) Valid() bool {
	switch s {
	case StatusEmAnalise, StatusRespondido, StatusConcluido, StatusNegado:
		return true
	}
	return false
}

// Agency is the code of the public body a request is addressed to.
// Codes are stored raw; display labels are a presentation concern.
type Agency string

const (
	AgencyPrefeitura         Agency = "prefeitura"
	AgencyCamaraVereadores   Agency = "camara-vereadores"
	AgencySecretariaEducacao Agency = "secretaria-educacao"
	AgencySecretariaSaude    Agency = "secretaria-saude"
	AgencySecretariaObras    Agency = "secretaria-obras"
	AgencyOutros             Agency = "outros"
)

// Agencies returns the fixed set of addressable bodies.
func Agencies() []Agency {
	return []Agency{
		AgencyPrefeitura,
		AgencyCamaraVereadores,
		AgencySecretariaEducacao,
		AgencySecretariaSaude,
		AgencySecretariaObras,
		AgencyOutros,
	}
}

// Valid reports whether a is a known agency code.
func (a Agency) Valid() bool {
	for _, known := range Agencies() {
		if a == known {
			return true
		}
	}
	return false
}

// Attachment is metadata for a file an admin attached to a response.
// Only metadata is persisted; Reference is an opaque locator and no binary
// content ever transits through this service.
type Attachment struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
	MimeType  string `json:"mime_type"`
	Reference string `json:"reference"`
}

// AttachmentList is an ordered set of attachments serialized as a JSON text
// column. The list is written as a whole on each response update; individual
// entries are never edited in place after being persisted.
type AttachmentList []Attachment

// Value implements driver.Valuer, encoding the list as JSON. An empty list
// is stored as NULL so "no attachments" round-trips as nil.
func (l AttachmentList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON text or byte columns.
func (l *AttachmentList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("attachments: unsupported column type %T", src)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// ErrInvalidStatus is returned by ParseStatus for unknown state strings.
var ErrInvalidStatus = errors.New("unknown request status")

// ParseStatus converts a wire string into a Status, rejecting anything
// outside the closed set.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Request is a citizen freedom-of-information request. The protocol is
// assigned exactly once at submission time and is the primary lookup key for
// every later operation; it is never regenerated or reused.
//
// Fields:
//   - Protocol: human-shareable identifier, "YYYYMMDD-XXXXXX", primary key.
//   - ApplicantName / Document / Email / Phone: submitter identity; Phone is
//     the only optional one.
//   - TargetAgency: addressed public body (closed Agency set).
//   - Subject: optional free-text summary.
//   - Description: the substance of the request, required.
//   - Status: review state, always StatusEmAnalise at creation.
//   - SubmittedAt: set at creation, immutable afterwards.
//   - AdminResponse / AdminAttachments / RespondedAt: written together by the
//     admin response operation.
type Request struct {
	Protocol         string         `json:"protocol"          gorm:"type:varchar(16);primaryKey"`
	ApplicantName    string         `json:"applicant_name"    gorm:"type:varchar(255);not null"`
	Document         string         `json:"document"          gorm:"type:varchar(32);not null"`
	Email            string         `json:"email"             gorm:"type:varchar(255);not null"`
	Phone            string         `json:"phone,omitempty"   gorm:"type:varchar(32)"`
	TargetAgency     Agency         `json:"target_agency"     gorm:"type:varchar(32);not null;index"`
	Subject          string         `json:"subject,omitempty" gorm:"type:varchar(255)"`
	Description      string         `json:"description"       gorm:"type:text;not null"`
	Status           Status         `json:"status"            gorm:"type:varchar(16);not null;index"`
	SubmittedAt      time.Time      `json:"submitted_at"      gorm:"not null;index"`
	AdminResponse    string         `json:"admin_response,omitempty"    gorm:"type:text"`
	AdminAttachments AttachmentList `json:"admin_attachments,omitempty" gorm:"type:text"`
	RespondedAt      *time.Time     `json:"responded_at,omitempty"`
	CreatedAt        time.Time      `json:"-"`
	UpdatedAt        time.Time      `json:"-"`
}

// TableName returns the database table name for Request.
func (Request) TableName() string { return "requests" }
