package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/logging"
	"github.com/dmitrijs2005/desawisata/internal/server/auth"
	"github.com/dmitrijs2005/desawisata/internal/server/media"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeLogin struct {
	res *services.LoginResult
	err error

	gotEmail, gotPassword string
}

func (f *fakeLogin) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.res, f.err
}

type fakeResource[T any, P any] struct {
	list    []T
	listErr error

	item    *T
	err     error
	deleted *models.Deleted

	gotID int64
	gotIn *P
	calls int
}

func (f *fakeResource[T, P]) List(ctx context.Context) ([]T, error) {
	f.calls++
	return f.list, f.listErr
}

func (f *fakeResource[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	f.calls++
	f.gotID = id
	return f.item, f.err
}

func (f *fakeResource[T, P]) Create(ctx context.Context, p *P) (*T, error) {
	f.calls++
	f.gotIn = p
	return f.item, f.err
}

func (f *fakeResource[T, P]) Update(ctx context.Context, id int64, p *P) (*T, error) {
	f.calls++
	f.gotID, f.gotIn = id, p
	return f.item, f.err
}

func (f *fakeResource[T, P]) Delete(ctx context.Context, id int64) (*models.Deleted, error) {
	f.calls++
	f.gotID = id
	return f.deleted, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

type fakePresigner struct {
	up  *media.Upload
	err error

	gotFolder, gotType string
}

func (f *fakePresigner) PresignPut(ctx context.Context, folder, contentType string) (*media.Upload, error) {
	f.gotFolder, f.gotType = folder, contentType
	return f.up, f.err
}

type testDeps struct {
	login        *fakeLogin
	destinations *fakeResource[models.Destination, models.DestinationInput]
	packages     *fakeResource[models.Package, models.PackageInput]
	blogs        *fakeResource[models.Blog, models.BlogInput]
	media        *fakePresigner
	ping         fakePinger
}

func newTestDeps() *testDeps {
	return &testDeps{
		login:        &fakeLogin{},
		destinations: &fakeResource[models.Destination, models.DestinationInput]{},
		packages:     &fakeResource[models.Package, models.PackageInput]{},
		blogs:        &fakeResource[models.Blog, models.BlogInput]{},
	}
}

func (d *testDeps) app() *fiber.App {
	deps := Deps{
		Auth:         d.login,
		Destinations: d.destinations,
		Packages:     d.packages,
		Blogs:        d.blogs,
		Tokens:       auth.NewTokenManager(testSecret, time.Hour),
		DB:           d.ping,
	}
	if d.media != nil {
		deps.Media = d.media
	}
	return newApp(discardLogger(), deps)
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := auth.NewTokenManager(testSecret, time.Hour).Issue(7, models.RoleAdmin)
	require.NoError(t, err)
	return tok
}

// do sends a request and returns the response with its body read.
func do(t *testing.T, app *fiber.App, method, path, body string, headers ...string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func detailOf(t *testing.T, raw []byte) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body.Detail
}

func bearer(t *testing.T) []string {
	return []string{"Authorization", "Bearer " + validToken(t)}
}
