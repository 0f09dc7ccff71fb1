package interfaces

import (
	"context"
	"errors"

	"engenharia_os/internal/domain/entities"
)

var (
	ErrServiceOrderNotFound = errors.New("service order not found")
	ErrVersionConflict      = errors.New("service order version conflict")
	ErrStageNotEligible     = errors.New("service order not eligible for stage advance")
	ErrEmptyUpdate          = errors.New("service order update carries no fields")
)

// IServiceOrderRepository abstracts the OS record store.
//
// The lifecycle must be able to:
//   - list the OS of one pipeline stage (planning queue, execution queue)
//   - apply a partial field update guarded by the version it read
//   - advance the stage only while the OS is still in the expected stage
//
//go:generate mockgen -source=service_order_repository_interface.go -destination=mocks/service_order_repository_mock.go -package=mock_interfaces
type IServiceOrderRepository interface {
	ListByStatus(ctx context.Context, status entities.OSStatus) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, fields entities.ServiceOrderUpdate, expectedVersion int64) (entities.ServiceOrder, error)
	AdvanceStage(ctx context.Context, id string, from, to entities.OSStatus) (entities.ServiceOrder, error)
}
