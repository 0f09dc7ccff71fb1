package interfaces

import (
	"context"

	"engenharia_os/internal/domain/entities"
)

// INotifier is the toast channel towards the operator of a session.
// Delivery guarantees are the implementation's concern.
//
//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces
type INotifier interface {
	Notify(ctx context.Context, sessionID string, kind entities.NotificationKind, message string)
	// Forget releases anything still pending for a closed session.
	Forget(sessionID string)
}
