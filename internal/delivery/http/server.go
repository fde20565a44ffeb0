package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"github.com/AmbientEg/navigation-service/config"
	"github.com/AmbientEg/navigation-service/internal/delivery"
	httpmiddleware "github.com/AmbientEg/navigation-service/internal/delivery/http/middleware"
	"github.com/AmbientEg/navigation-service/internal/delivery/http/router"
	"github.com/AmbientEg/navigation-service/internal/delivery/http/validator"
	"github.com/AmbientEg/navigation-service/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Validator = validator.New()
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	if timeouts := params.Config.HTTP.Timeouts; timeouts.ReadTimeout > 0 {
		echoServer.Server.ReadTimeout = timeouts.ReadTimeout
		echoServer.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
		echoServer.Server.WriteTimeout = timeouts.WriteTimeout
		echoServer.Server.IdleTimeout = timeouts.IdleTimeout
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
