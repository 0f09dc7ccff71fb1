package interfaces

import (
	"context"
	"errors"

	"engenharia_os/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("edit session not found")

// ISessionStore keeps operator edit sessions. Sessions are transient and
// never written to the OS store.
//
//go:generate mockgen -source=session_store_interface.go -destination=mocks/session_store_mock.go -package=mock_interfaces
type ISessionStore interface {
	Get(ctx context.Context, id string) (entities.EditSession, error)
	Save(ctx context.Context, s entities.EditSession) error
	Delete(ctx context.Context, id string) error
}
