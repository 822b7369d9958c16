package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/server/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	d := newTestDeps()
	resp, raw := do(t, d.app(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	d.ping.err = errors.New("connection refused")
	resp, raw = do(t, d.app(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"status":"unavailable"}`, string(raw))
}

func TestMetrics_CountsRequests(t *testing.T) {
	app := newTestDeps().app()

	do(t, app, http.MethodGet, "/destinasi", "")
	resp, raw := do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `desawisata_http_requests_total{method="GET",path="/destinasi",status="200"} 1`)
	assert.Contains(t, string(raw), "desawisata_http_request_duration_seconds")
}

func TestRequestID(t *testing.T) {
	app := newTestDeps().app()

	resp, _ := do(t, app, http.MethodGet, "/blog", "", "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))

	resp, _ = do(t, app, http.MethodGet, "/blog", "")
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}

func TestUnknownRoute(t *testing.T) {
	resp, raw := do(t, newTestDeps().app(), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cannot GET /nope", detailOf(t, raw))
}

func TestPresign_NotRegisteredWithoutMedia(t *testing.T) {
	resp, _ := do(t, newTestDeps().app(), http.MethodPost, "/media/presign", `{}`, bearer(t)...)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPresign(t *testing.T) {
	d := newTestDeps()
	d.media = &fakePresigner{up: &media.Upload{
		Key:       "blog/2026/10/19/k.png",
		UploadURL: "http://s3/put",
		ObjectURL: "http://s3/desa/blog/2026/10/19/k.png",
		ExpiresAt: time.Date(2026, 10, 19, 8, 15, 0, 0, time.UTC),
	}}
	app := d.app()

	resp, raw := do(t, app, http.MethodPost, "/media/presign", `{"folder":"blog","content_type":"image/png"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, string(raw))

	resp, raw = do(t, app, http.MethodPost, "/media/presign", `{"folder":"blog","content_type":"image/png"}`, bearer(t)...)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.JSONEq(t, `{
		"key": "blog/2026/10/19/k.png",
		"upload_url": "http://s3/put",
		"object_url": "http://s3/desa/blog/2026/10/19/k.png",
		"expires_at": "2026-10-19T08:15:00Z"
	}`, string(raw))
	assert.Equal(t, "blog", d.media.gotFolder)
	assert.Equal(t, "image/png", d.media.gotType)

	d.media.err = fmt.Errorf("%w: unsupported content type %q", common.ErrValidation, "text/plain")
	resp, raw = do(t, app, http.MethodPost, "/media/presign", `{"folder":"blog","content_type":"text/plain"}`, bearer(t)...)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `unsupported content type "text/plain"`, detailOf(t, raw))

	d.media.err = errors.Join(common.ErrorInternal, errors.New("aws down"))
	resp, raw = do(t, app, http.MethodPost, "/media/presign", `{"folder":"blog","content_type":"image/png"}`, bearer(t)...)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", detailOf(t, raw))
}
