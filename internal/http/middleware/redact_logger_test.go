package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// captureLogs redirects the global zerolog logger into a buffer for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestRedactingLogger_ScrubsQueryAndHeaders(t *testing.T) {
	buf := captureLogs(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{MaskHeaders: []string{"X-Api-Key"}}))
	r.GET("/lookup", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/lookup?email=maria@example.com&cpf=123.456.789-09&cnpj=12.345.678/0001-95&phone=(11)%2099999-0000", nil)
	req.Header.Set("X-Api-Key", "super-secret")
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("X-Contact", "joao@example.com")
	r.ServeHTTP(w, req)

	out := buf.String()
	for _, leaked := range []string{
		"maria@example.com",
		"123.456.789-09",
		"12.345.678/0001-95",
		"99999-0000",
		"super-secret",
		"Bearer tok",
		"joao@example.com",
	} {
		if strings.Contains(out, leaked) {
			t.Fatalf("log leaked %q:\n%s", leaked, out)
		}
	}
	for _, marker := range []string{
		"[REDACTED:email]",
		"[REDACTED:cpf]",
		"[REDACTED:cnpj]",
		"[REDACTED]",
	} {
		if !strings.Contains(out, marker) {
			t.Fatalf("expected marker %q in log:\n%s", marker, out)
		}
	}
}

func TestRedactingLogger_SeverityFollowsStatus(t *testing.T) {
	buf := captureLogs(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RedactingLogger(RedactOptions{}))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if out := buf.String(); !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("404 not logged at warn:\n%s", out)
	}

	buf.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))
	if out := buf.String(); !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("500 not logged at error:\n%s", out)
	}
}
