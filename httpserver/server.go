package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"sapientdcs/contactus"
	"sapientdcs/errs"
	"sapientdcs/pkg/config"
	"sapientdcs/pkg/logger"
	"sapientdcs/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Logger *zap.SugaredLogger

	SubmissionService contactus.Service

	JWTSecret string
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: allowOrigins(cfg.AllowOrigins),
		Logger:       logger.NOOPLogger,
		JWTSecret:    cfg.Auth.JWTSecret,
	}

	s.Router.HideBanner = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleError
	s.RegisterGlobalMiddlewares()
	api := s.Router.Group("/api")

	// PUBLIC
	public := api.Group("")
	s.RegisterPublicRoutes(public)

	// PRIVATE
	private := api.Group("")
	private.Use(s.jwtMiddleware())
	s.RegisterPrivateRoutes(private)
	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(middleware.BodyLimit("1M"))
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) RegisterPublicRoutes(g *echo.Group) {
	s.RegisterSubmissionRoutes(g)
}

func (s *Server) RegisterPrivateRoutes(g *echo.Group) {
	s.RegisterPrivateSubmissionRoutes(g)
}

// errNoJWTSecret rejects private routes when no signing secret is configured.
var errNoJWTSecret = errs.Errorf(errs.EUNAUTHORIZED, "private routes are disabled")

func (s *Server) jwtMiddleware() echo.MiddlewareFunc {
	if strings.TrimSpace(s.JWTSecret) == "" {
		return func(echo.HandlerFunc) echo.HandlerFunc {
			return func(echo.Context) error {
				return errNoJWTSecret
			}
		}
	}
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(s.JWTSecret),
		SigningMethod: "HS256",
	})
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// handleError maps application errors to HTTP status codes. Server side
// failures are logged and reported to sentry; their detail never reaches the
// client.
func (s *Server) handleError(err error, c echo.Context) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			status = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			status = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			status = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			status = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			status = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		}
	}

	if status >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(), zap.String("request_id", requestID(c)))
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		if werr := writeError(c, status, message, "", err); werr != nil {
			s.Logger.Errorw("write error response", zap.Error(werr))
		}
	}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func allowOrigins(origins string) []string {
	if strings.TrimSpace(origins) == "" {
		return []string{"*"}
	}
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
