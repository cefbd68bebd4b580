package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/notemart/notemart/internal/config"
	"github.com/notemart/notemart/internal/domain/repository"
)

// Module wires the storage facade and its repositories into the fx graph.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		func(s *Storage) repository.Factory { return s },
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.BoardRepository { return s.Boards() },
		func(s *Storage) repository.StreamRepository { return s.Streams() },
		func(s *Storage) repository.SubjectRepository { return s.Subjects() },
		func(s *Storage) repository.NoteRepository { return s.Notes() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.ContactRepository { return s.Contacts() },
	),
)

type storageParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	storage, err := New(context.Background(), p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})

	return storage, nil
}
