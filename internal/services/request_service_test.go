package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ouvidoria-digital/esic-backend/internal/domain"
	"github.com/ouvidoria-digital/esic-backend/internal/protocol"
	"github.com/ouvidoria-digital/esic-backend/internal/repo"
)

// gormRequestRepo adapts the repo package's free functions to the RequestRepo
// interface, mirroring the shim the router wires in production.
type gormRequestRepo struct{}

func (gormRequestRepo) CreateRequest(ctx context.Context, db *gorm.DB, r *domain.Request) error {
	return repo.CreateRequest(ctx, db, r)
}

func (gormRequestRepo) GetRequestByProtocol(ctx context.Context, db *gorm.DB, p string) (*domain.Request, error) {
	return repo.GetRequestByProtocol(ctx, db, p)
}

func (gormRequestRepo) ListRequests(ctx context.Context, db *gorm.DB, f repo.ListFilter) ([]domain.Request, error) {
	return repo.ListRequests(ctx, db, f)
}

func (gormRequestRepo) CountRequests(ctx context.Context, db *gorm.DB, f repo.ListFilter) (int64, error) {
	return repo.CountRequests(ctx, db, f)
}

func (gormRequestRepo) UpdateResponseByProtocol(ctx context.Context, db *gorm.DB, p string, response string, attachments domain.AttachmentList, status domain.Status, respondedAt time.Time) (*domain.Request, error) {
	return repo.UpdateResponseByProtocol(ctx, db, p, response, attachments, status, respondedAt)
}

func (gormRequestRepo) RequestStats(ctx context.Context, db *gorm.DB) (int64, map[domain.Status]int64, error) {
	return repo.RequestStats(ctx, db)
}

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svc.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Request{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newService(t *testing.T) *RequestService {
	t.Helper()
	return NewRequestService(newServiceDB(t), gormRequestRepo{})
}

func validSubmit() SubmitInput {
	return SubmitInput{
		ApplicantName: "Maria da Silva",
		Document:      "123.456.789-09",
		Email:         "maria@example.com",
		Phone:         "(11) 99999-0000",
		TargetAgency:  domain.AgencySecretariaEducacao,
		Subject:       "Merenda escolar",
		Description:   "Solicito os gastos com merenda escolar em 2025.",
	}
}

func TestSubmit_Success(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	r, err := svc.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !protocol.Valid(r.Protocol) {
		t.Fatalf("protocol %q does not match the expected shape", r.Protocol)
	}
	if r.Status != domain.StatusEmAnalise {
		t.Fatalf("status = %q, want %q", r.Status, domain.StatusEmAnalise)
	}
	if r.SubmittedAt.Before(before) || r.SubmittedAt.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("SubmittedAt = %v, not near now", r.SubmittedAt)
	}
	if r.AdminResponse != "" || r.RespondedAt != nil {
		t.Fatalf("fresh request must not carry a response")
	}

	got, err := svc.Lookup(ctx, r.Protocol)
	if err != nil {
		t.Fatalf("Lookup after Submit: %v", err)
	}
	if got.ApplicantName != "Maria da Silva" ||
		got.Document != "123.456.789-09" ||
		got.Email != "maria@example.com" ||
		got.Phone != "(11) 99999-0000" ||
		got.TargetAgency != domain.AgencySecretariaEducacao ||
		got.Subject != "Merenda escolar" ||
		got.Description != "Solicito os gastos com merenda escolar em 2025." {
		t.Fatalf("Lookup returned altered fields: %+v", got)
	}
}

func TestSubmit_TrimsWhitespace(t *testing.T) {
	svc := newService(t)
	in := validSubmit()
	in.ApplicantName = "  Maria da Silva  "
	in.Description = "\tSolicito dados.\n"

	r, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if r.ApplicantName != "Maria da Silva" || r.Description != "Solicito dados." {
		t.Fatalf("fields not trimmed: %+v", r)
	}
}

func TestSubmit_ValidationFailures(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"empty name", func(in *SubmitInput) { in.ApplicantName = "  " }},
		{"empty document", func(in *SubmitInput) { in.Document = "" }},
		{"empty email", func(in *SubmitInput) { in.Email = "" }},
		{"bad email", func(in *SubmitInput) { in.Email = "not-an-email" }},
		{"empty description", func(in *SubmitInput) { in.Description = "" }},
		{"empty agency", func(in *SubmitInput) { in.TargetAgency = "" }},
		{"unknown agency", func(in *SubmitInput) { in.TargetAgency = "ministerio-da-magia" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSubmit()
			tc.mutate(&in)
			if _, err := svc.Submit(ctx, in); !errors.Is(err, ErrValidation) {
				t.Fatalf("Submit = %v, want ErrValidation", err)
			}
		})
	}

	// Nothing may have been persisted by the rejected submissions.
	_, total, err := svc.List(ctx, ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 0 {
		t.Fatalf("rejected submissions persisted %d rows", total)
	}
}

func TestSubmit_DistinctProtocols(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		r, err := svc.Submit(ctx, validSubmit())
		if err != nil {
			t.Fatalf("Submit #%d: %v", i, err)
		}
		if seen[r.Protocol] {
			t.Fatalf("protocol %q issued twice", r.Protocol)
		}
		seen[r.Protocol] = true
	}
}

// collideOnceRepo wraps the real repo and forces the first insert to fail
// with a unique-constraint error, as if the generated protocol were taken.
type collideOnceRepo struct {
	gormRequestRepo
	collided bool
	seen     []string
}

func (r *collideOnceRepo) CreateRequest(ctx context.Context, db *gorm.DB, req *domain.Request) error {
	r.seen = append(r.seen, req.Protocol)
	if !r.collided {
		r.collided = true
		return errors.New("UNIQUE constraint failed: requests.protocol")
	}
	return repo.CreateRequest(ctx, db, req)
}

func TestSubmit_RetriesOnDuplicateProtocol(t *testing.T) {
	db := newServiceDB(t)
	cr := &collideOnceRepo{}
	svc := NewRequestService(db, cr)

	r, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(cr.seen) != 2 {
		t.Fatalf("insert attempts = %d, want 2", len(cr.seen))
	}
	if cr.seen[0] == cr.seen[1] {
		t.Fatalf("retry reused the colliding protocol %q", cr.seen[0])
	}
	if r.Protocol != cr.seen[1] {
		t.Fatalf("returned protocol %q, want the retried one %q", r.Protocol, cr.seen[1])
	}
}

// alwaysDuplicateRepo rejects every insert with a duplicate-key error.
type alwaysDuplicateRepo struct{ gormRequestRepo }

func (alwaysDuplicateRepo) CreateRequest(context.Context, *gorm.DB, *domain.Request) error {
	return gorm.ErrDuplicatedKey
}

func TestSubmit_GivesUpAfterRetries(t *testing.T) {
	svc := NewRequestService(newServiceDB(t), alwaysDuplicateRepo{})

	_, err := svc.Submit(context.Background(), validSubmit())
	if err == nil {
		t.Fatal("Submit succeeded against a store that always collides")
	}
	if errors.Is(err, ErrValidation) {
		t.Fatalf("exhausted retries reported as validation error: %v", err)
	}
}

func TestLookup_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.Lookup(context.Background(), "20260101-ZZZZZZ")
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("Lookup = %v, want ErrRequestNotFound", err)
	}
}

func TestLookup_EmptyProtocol(t *testing.T) {
	svc := newService(t)

	_, err := svc.Lookup(context.Background(), "   ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Lookup = %v, want ErrValidation", err)
	}
}

func TestList_StatusAndSearch(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var protocols []string
	for i := 0; i < 3; i++ {
		in := validSubmit()
		in.Subject = "Pauta " + strings.Repeat("x", i+1)
		r, err := svc.Submit(ctx, in)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		protocols = append(protocols, r.Protocol)
	}
	if _, err := svc.RecordResponse(ctx, protocols[0], ResponseInput{
		Response:  "Segue em anexo.",
		NewStatus: string(domain.StatusRespondido),
	}); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}

	for _, token := range []string{"", "all", "todos"} {
		items, total, err := svc.List(ctx, ListInput{Status: token})
		if err != nil {
			t.Fatalf("List(%q): %v", token, err)
		}
		if total != 3 || len(items) != 3 {
			t.Fatalf("List(%q) = %d items / total %d, want 3/3", token, len(items), total)
		}
	}

	items, total, err := svc.List(ctx, ListInput{Status: string(domain.StatusRespondido)})
	if err != nil {
		t.Fatalf("List respondido: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Protocol != protocols[0] {
		t.Fatalf("status filter returned %+v (total %d)", items, total)
	}

	items, total, err = svc.List(ctx, ListInput{Search: "pauta xx"})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("search returned %d items / total %d, want 2/2", len(items), total)
	}

	if _, _, err := svc.List(ctx, ListInput{Status: "Arquivado"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("List with unknown status = %v, want ErrValidation", err)
	}
}

func TestList_Paging(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Submit(ctx, validSubmit()); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	items, total, err := svc.List(ctx, ListInput{Offset: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5 regardless of paging", total)
	}
	if len(items) != 2 {
		t.Fatalf("page size = %d, want 2", len(items))
	}
}

func TestRecordResponse_Success(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	r, err := svc.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	atts := domain.AttachmentList{{
		Name:      "relatorio.pdf",
		SizeBytes: 2048,
		MimeType:  "application/pdf",
		Reference: "simulated/relatorio.pdf",
	}}
	updated, err := svc.RecordResponse(ctx, r.Protocol, ResponseInput{
		Response:    "Relatório anexo.",
		Attachments: atts,
		NewStatus:   string(domain.StatusConcluido),
	})
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if updated.Status != domain.StatusConcluido {
		t.Fatalf("status = %q, want %q", updated.Status, domain.StatusConcluido)
	}
	if updated.AdminResponse != "Relatório anexo." {
		t.Fatalf("AdminResponse = %q", updated.AdminResponse)
	}
	if updated.RespondedAt == nil {
		t.Fatal("RespondedAt not set")
	}

	got, err := svc.Lookup(ctx, r.Protocol)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.Status != domain.StatusConcluido || got.AdminResponse != "Relatório anexo." {
		t.Fatalf("response not visible via Lookup: %+v", got)
	}
	if len(got.AdminAttachments) != 1 || got.AdminAttachments[0].Reference != "simulated/relatorio.pdf" {
		t.Fatalf("attachments not round-tripped: %+v", got.AdminAttachments)
	}
}

func TestRecordResponse_AttachmentOnly(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	r, err := svc.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	updated, err := svc.RecordResponse(ctx, r.Protocol, ResponseInput{
		Attachments: domain.AttachmentList{{Name: "dados.csv", SizeBytes: 10, MimeType: "text/csv", Reference: "simulated/dados.csv"}},
		NewStatus:   string(domain.StatusRespondido),
	})
	if err != nil {
		t.Fatalf("RecordResponse with attachment only: %v", err)
	}
	if updated.AdminResponse != "" {
		t.Fatalf("AdminResponse = %q, want empty", updated.AdminResponse)
	}
}

func TestRecordResponse_EmptyResponseRejectedBeforeStore(t *testing.T) {
	// No table is created, so any store call would fail loudly; the empty
	// payload must be rejected before persistence is touched.
	path := filepath.Join(t.TempDir(), "bare.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	svc := NewRequestService(db, gormRequestRepo{})

	_, err = svc.RecordResponse(context.Background(), "20260101-ABC123", ResponseInput{
		Response:  "   ",
		NewStatus: string(domain.StatusNegado),
	})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("RecordResponse = %v, want ErrEmptyResponse", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("ErrEmptyResponse must wrap ErrValidation")
	}
}

func TestRecordResponse_UnknownStatus(t *testing.T) {
	svc := newService(t)

	_, err := svc.RecordResponse(context.Background(), "20260101-ABC123", ResponseInput{
		Response:  "ok",
		NewStatus: "Encerrado",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("RecordResponse = %v, want ErrValidation", err)
	}
}

func TestRecordResponse_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.RecordResponse(context.Background(), "20260101-ABC123", ResponseInput{
		Response:  "ok",
		NewStatus: string(domain.StatusRespondido),
	})
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("RecordResponse = %v, want ErrRequestNotFound", err)
	}
}

func TestStats(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var protocols []string
	for i := 0; i < 4; i++ {
		r, err := svc.Submit(ctx, validSubmit())
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		protocols = append(protocols, r.Protocol)
	}
	if _, err := svc.RecordResponse(ctx, protocols[0], ResponseInput{Response: "ok", NewStatus: string(domain.StatusRespondido)}); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if _, err := svc.RecordResponse(ctx, protocols[1], ResponseInput{Response: "negado", NewStatus: string(domain.StatusNegado)}); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 4 {
		t.Fatalf("Total = %d, want 4", stats.Total)
	}
	want := map[domain.Status]int64{
		domain.StatusEmAnalise:  2,
		domain.StatusRespondido: 1,
		domain.StatusConcluido:  0,
		domain.StatusNegado:     1,
	}
	for st, n := range want {
		if stats.ByStatus[st] != n {
			t.Fatalf("ByStatus[%s] = %d, want %d", st, stats.ByStatus[st], n)
		}
	}
}
