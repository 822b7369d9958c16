// Package httpapi is the REST surface of the API: routing, the bearer token
// gate, request logging and metrics, and the mapping of service errors to
// HTTP responses.
package httpapi

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/logging"
	"github.com/dmitrijs2005/desawisata/internal/server/auth"
	"github.com/dmitrijs2005/desawisata/internal/server/media"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 10 * time.Second

type LoginService interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
}

// ResourceService is the CRUD protocol shared by destinations, packages and
// blogs.
type ResourceService[T any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, p *P) (*T, error)
	Update(ctx context.Context, id int64, p *P) (*T, error)
	Delete(ctx context.Context, id int64) (*models.Deleted, error)
}

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Presigner interface {
	PresignPut(ctx context.Context, folder, contentType string) (*media.Upload, error)
}

// Deps is everything the routes call into. Media may be nil, in which case
// the presign endpoint is not registered.
type Deps struct {
	Auth         LoginService
	Destinations ResourceService[models.Destination, models.DestinationInput]
	Packages     ResourceService[models.Package, models.PackageInput]
	Blogs        ResourceService[models.Blog, models.BlogInput]
	Tokens       TokenVerifier
	DB           Pinger
	Media        Presigner
	Metrics      *Metrics
}

type Server struct {
	address string
	app     *fiber.App
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, deps Deps) *Server {
	l = l.With("module", "http_server")
	return &Server{
		address: address,
		app:     newApp(l, deps),
		logger:  l,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Error(ctx, "shutdown error", "err", err)
		}
		// unblocks Listener if shutdown ran before it started serving
		_ = listen.Close()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	return s.app.Listener(listen)
}

func newApp(l logging.Logger, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Desa Wisata API",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(l),
	})

	if deps.Metrics == nil {
		deps.Metrics = NewMetrics("desawisata")
	}

	app.Use(requestID())
	app.Use(observe(l, deps.Metrics))
	app.Use(recover.New())

	gate := authGate(deps.Tokens)

	app.Get("/health", healthHandler(deps.DB))
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	app.Post("/auth/login", loginHandler(l, deps.Auth))

	registerResource(app, gate, &resourceHandler[models.Destination, models.DestinationInput]{
		svc: deps.Destinations, path: "/destinasi", noun: "destination", deletedNoun: "Destination", logger: l,
	})
	registerResource(app, gate, &resourceHandler[models.Package, models.PackageInput]{
		svc: deps.Packages, path: "/paket", noun: "package", deletedNoun: "Paket", logger: l,
	})
	registerResource(app, gate, &resourceHandler[models.Blog, models.BlogInput]{
		svc: deps.Blogs, path: "/blog", noun: "blog", deletedNoun: "Blog", logger: l,
	})

	if deps.Media != nil {
		app.Post("/media/presign", gate, presignHandler(l, deps.Media))
	}

	return app
}
