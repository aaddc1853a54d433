package main

import (
	"github.com/homework-evaluation/backend/internal/deps"
	"go.uber.org/fx"

	_ "github.com/homework-evaluation/backend/internal/deps/logger"
)

func main() {
	fx.New(
		fx.Provide(
			deps.Config,
			deps.ProvideEntClient,
			PrometheusMetrics,
			ExporterMux,
		),
		fx.Invoke(deps.OTelSDK),
		fx.Invoke(PrometheusHTTPHandler),
	).Run()
}
