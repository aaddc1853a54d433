package main

import (
	"github.com/homework-evaluation/backend/internal/deps"
	"go.uber.org/fx"

	_ "github.com/homework-evaluation/backend/internal/deps/logger"
)

func main() {
	app := fx.New(
		deps.FxCommonModule,
		fx.Provide(
			AnnotateMiddleware(MachineMiddleware),
			AnnotateMiddleware(CorsMiddleware),
			AnnotateMiddleware(AuthMiddleware),
			AnnotateService(AuthService),
			AnnotateService(AdminService),
			AnnotateService(TeacherService),
			AnnotateService(StudentService),
			fx.Annotate(
				GinEngine,
				fx.ParamTags(`group:"services"`, `group:"middlewares"`),
			),
		),
		fx.Invoke(GinLifecycle),
	)

	app.Run()
}
