// Package http exposes the account service over HTTP using gin. The
// handlers translate the service's sentinel errors into status codes; all
// business rules live in the services package.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dkarklins/fitauth/internal/logging"
	"github.com/dkarklins/fitauth/internal/server/models"
	"github.com/dkarklins/fitauth/internal/server/services"
	"github.com/gin-gonic/gin"
)

// AuthService is the service surface the HTTP layer depends on.
type AuthService interface {
	Register(ctx context.Context, params services.RegisterParams) (string, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	ListMetrics(ctx context.Context, userID string) ([]models.PhysicalMetric, error)
	DeleteAccount(ctx context.Context, userID, refreshToken string) error
}

type Server struct {
	address   string
	logger    logging.Logger
	service   AuthService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, service AuthService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		service:   service,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	api.POST("/users/register", s.registerUser)
	api.POST("/auth/login", s.login)
	api.PUT("/auth", s.refreshAccessToken)
	api.DELETE("/auth/logout", s.logout)

	authed := api.Group("", s.authMiddleware())
	authed.GET("/users/profile", s.getProfile)
	authed.PUT("/users/update", s.updateProfile)
	authed.GET("/users/metrics", s.listMetrics)
	authed.DELETE("/users/delete", s.deleteAccount)

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
