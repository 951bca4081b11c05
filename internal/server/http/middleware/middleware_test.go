package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDPropagatesHeader(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDContextKey)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if seen != "req-42" {
		t.Fatalf("expected propagated id, got %q", seen)
	}
	if got := resp.Header().Get(RequestIDHeader); got != "req-42" {
		t.Fatalf("expected response header, got %q", got)
	}
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := resp.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Fatalf("expected generated uuid, got %q", got)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"description":"noise"}`))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != `{"description":"noise"}` {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}
}

func TestDecompressRequestRejectsCorruptBody(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil || body.Code != "invalid_input" {
		t.Fatalf("unexpected body %q, err %v", resp.Body.String(), err)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/orders/7", nil)
	req.Header.Set(RequestIDHeader, "abc")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log: %v", err)
	}
	if record["request_id"] != "abc" || record["path"] != "/orders/:id" || record["level"] != "INFO" {
		t.Fatalf("unexpected record %v", record)
	}

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	if !strings.Contains(buf.String(), `"level":"ERROR"`) {
		t.Fatalf("expected error level for 5xx, got %s", buf.String())
	}
}
