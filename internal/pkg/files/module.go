package files

import (
	"go.uber.org/fx"

	"github.com/notemart/notemart/internal/config"
)

// Module wires the upload store for dependency injection.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
}

func newStore(p storeParams) (*Store, error) {
	return NewStore(p.Config.UploadsDir)
}
