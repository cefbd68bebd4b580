package di

import (
	"go.uber.org/fx"

	"github.com/notemart/notemart/internal/adapter/razorpay"
	"github.com/notemart/notemart/internal/app"
	"github.com/notemart/notemart/internal/config"
	"github.com/notemart/notemart/internal/logger"
	"github.com/notemart/notemart/internal/pkg/auth"
	"github.com/notemart/notemart/internal/pkg/files"
	"github.com/notemart/notemart/internal/server/http/router"
	"github.com/notemart/notemart/internal/storage/postgres"
	"github.com/notemart/notemart/internal/usecase"
)

// Module assembles the full application graph. Extra options let tests
// override individual components.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		files.Module,
		postgres.Module,
		razorpay.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
