package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/notemart/notemart/internal/adapter/razorpay"
	"github.com/notemart/notemart/internal/config"
	"github.com/notemart/notemart/internal/domain/repository"
)

// Module wires all use cases into the fx graph.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCatalogUseCase,
	NewNoteUseCase,
	NewContactUseCase,
	NewStatsUseCase,
	newOrderUseCase,
)

type orderParams struct {
	fx.In

	Orders  repository.OrderRepository
	Notes   repository.NoteRepository
	Gateway razorpay.Client
	Config  *config.Config
	Logger  *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(
		p.Orders, p.Notes, p.Gateway,
		p.Config.RazorpayKeyID, p.Config.RazorpayKeySecret, p.Config.Currency,
		p.Logger,
	)
}
