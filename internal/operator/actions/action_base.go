package actions

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, store *storage.Storage) error
}
