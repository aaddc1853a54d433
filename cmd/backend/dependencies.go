package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/httpapi"
	adminservice "github.com/homework-evaluation/backend/httpapi/admin"
	authservice "github.com/homework-evaluation/backend/httpapi/auth"
	studentservice "github.com/homework-evaluation/backend/httpapi/student"
	teacherservice "github.com/homework-evaluation/backend/httpapi/teacher"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/gate"
	"github.com/homework-evaluation/backend/internal/httputils"
	"github.com/homework-evaluation/backend/internal/workers"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/fx"
)

// AuthMiddleware creates an auth.Middleware that can be injected into gin.
func AuthMiddleware(storage auth.Storage) Middleware {
	return Middleware{
		Handler: auth.Middleware(storage),
	}
}

// MachineMiddleware creates a machine middleware that can be injected into gin.
func MachineMiddleware() Middleware {
	return Middleware{
		Handler: httputils.MachineMiddleware(),
	}
}

// CorsMiddleware creates a cors middleware that can be injected into gin.
func CorsMiddleware(cfg config.Config) Middleware {
	return Middleware{
		Handler: cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", "User-Agent", "Referer"},
			AllowCredentials: true,
		}),
	}
}

// AuthService creates an auth service.
func AuthService(gate *gate.Gate, storage auth.Storage) *authservice.AuthService {
	return authservice.NewAuthService(gate, storage)
}

// AdminService creates an admin service.
func AdminService(gate *gate.Gate, storage auth.Storage) *adminservice.AdminService {
	return adminservice.NewAdminService(gate, storage)
}

// TeacherService creates a teacher service.
func TeacherService(gate *gate.Gate) *teacherservice.TeacherService {
	return teacherservice.NewTeacherService(gate)
}

// StudentService creates a student service.
func StudentService(gate *gate.Gate) *studentservice.StudentService {
	return studentservice.NewStudentService(gate)
}

// GinEngine creates a gin engine.
//
// Tracing, access logs and HTTP metrics wrap every request; the injected
// middlewares run after them.
func GinEngine(services []httpapi.Service, middlewares []Middleware, cfg config.Config) *gin.Engine {
	engine := gin.New()

	if err := engine.SetTrustedProxies(cfg.TrustProxies); err != nil {
		slog.Error("error setting trusted proxies", "error", err)
	}

	prom := ginprom.New(
		ginprom.Engine(engine),
		ginprom.Namespace("hwe"),
		ginprom.Subsystem("http"),
		ginprom.Path("/metrics"),
	)

	engine.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	engine.Use(sloggin.New(slog.Default()))
	engine.Use(prom.Instrument())

	for _, middleware := range middlewares {
		engine.Use(middleware.Handler)
	}

	engine.Use(gin.Recovery())

	engine.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "OK")
	})

	api := engine.Group("/api")
	httpapi.Register(api, services...)

	return engine
}

// GinLifecycle serves the gin engine until the application stops.
func GinLifecycle(lifecycle fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			workers.Global.Go(func() {
				slog.Info("gin engine starting", "address", srv.Addr)

				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("error running gin engine", "error", err)
				}
			})

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown gin engine: %w", err)
			}

			// flush post-commit event handlers of the last requests
			workers.Global.Wait()
			return nil
		},
	})
}

// Middleware is a middleware that can be injected into gin.
type Middleware struct {
	Handler gin.HandlerFunc
}

// AnnotateMiddleware annotates a middleware function to be injected into gin.
func AnnotateMiddleware(f any) any {
	return fx.Annotate(
		f,
		fx.ResultTags(`group:"middlewares"`),
	)
}

// AnnotateService annotates a service function to be injected into gin.
func AnnotateService(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(httpapi.Service)),
		fx.ResultTags(`group:"services"`),
	)
}
