package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/domain/planning"
	"engenharia_os/internal/usecase/interfaces"
	"engenharia_os/pkg/format"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IServiceOrderLifecycleUseCase drives the engineering side of an OS:
//   - "OS em planejamento" => BeginPlanning / UpdatePlanningFields / FinalizePlanning
//   - "OS em execução (replanejamento)" => BeginReplanning / UpdateReplanningFields / SubmitReplanning
//
// Editing state lives in an EditSession; one OS per session at a time.
//
//go:generate mockgen -source=service_order_lifecycle_usecase.go -destination=../adapter/http/handlers/mocks/lifecycle_usecase_mock.go -package=mocks
type IServiceOrderLifecycleUseCase interface {
	OpenSession(ctx context.Context) (entities.EditSession, error)
	GetSession(ctx context.Context, sessionID string) (entities.EditSession, error)
	CloseSession(ctx context.Context, sessionID string) error
	ListByStatus(ctx context.Context, status entities.OSStatus) ([]entities.ServiceOrder, error)
	GetServiceOrder(ctx context.Context, osID string) (entities.ServiceOrder, error)

	BeginPlanning(ctx context.Context, sessionID, osID string) (entities.EditSession, error)
	UpdatePlanningFields(ctx context.Context, sessionID string, fields entities.PlanningCandidate) (entities.EditSession, error)
	CancelPlanning(ctx context.Context, sessionID string) error
	FinalizePlanning(ctx context.Context, sessionID, osID string) (LifecycleResult, error)

	BeginReplanning(ctx context.Context, sessionID, osID string) (entities.EditSession, error)
	UpdateReplanningFields(ctx context.Context, sessionID string, fields entities.ReplanningCandidate) (entities.EditSession, error)
	CancelReplanning(ctx context.Context, sessionID string) error
	SubmitReplanning(ctx context.Context, sessionID, osID string) (LifecycleResult, error)
}

// LifecycleResult is the persisted OS after a transition plus its HH cost.
type LifecycleResult struct {
	Order         entities.ServiceOrder
	EstimatedCost float64
}

type ServiceOrderLifecycleUseCase struct {
	repo       interfaces.IServiceOrderRepository
	sessions   interfaces.ISessionStore
	notifier   interfaces.INotifier
	hourlyRate float64
	log        *logrus.Entry
	now        func() time.Time
}

var _ IServiceOrderLifecycleUseCase = (*ServiceOrderLifecycleUseCase)(nil)

func NewServiceOrderLifecycleUseCase(
	repo interfaces.IServiceOrderRepository,
	sessions interfaces.ISessionStore,
	notifier interfaces.INotifier,
	hourlyRate float64,
	logger *logrus.Logger,
) *ServiceOrderLifecycleUseCase {
	if hourlyRate <= 0 {
		hourlyRate = planning.DefaultHourlyRate
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ServiceOrderLifecycleUseCase{
		repo:       repo,
		sessions:   sessions,
		notifier:   notifier,
		hourlyRate: hourlyRate,
		log:        logger.WithField("component", "os.lifecycle"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceOrderLifecycleUseCase) OpenSession(ctx context.Context) (entities.EditSession, error) {
	now := u.now()
	s := entities.EditSession{ID: uuid.NewString(), StartedAt: now, UpdatedAt: now}
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.EditSession{}, &PersistenceError{Op: "save-session", Err: err}
	}
	u.log.WithField("session_id", s.ID).Debug("session opened")
	return s, nil
}

func (u *ServiceOrderLifecycleUseCase) GetSession(ctx context.Context, sessionID string) (entities.EditSession, error) {
	return u.loadSession(ctx, sessionID)
}

// CloseSession discards the session, any pending edit and its undrained
// notifications. The OS is never touched.
func (u *ServiceOrderLifecycleUseCase) CloseSession(ctx context.Context, sessionID string) error {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := u.sessions.Delete(ctx, s.ID); err != nil {
		return &PersistenceError{Op: "delete-session", Err: err}
	}
	u.notifier.Forget(s.ID)
	u.log.WithFields(logrus.Fields{"session_id": s.ID, "mode": s.Mode, "os_id": s.OSID}).Debug("session closed")
	return nil
}

func (u *ServiceOrderLifecycleUseCase) ListByStatus(ctx context.Context, status entities.OSStatus) ([]entities.ServiceOrder, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	orders, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		u.log.WithError(err).WithField("status", status).Error("list service orders failed")
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].Numero < orders[j].Numero })
	return orders, nil
}

func (u *ServiceOrderLifecycleUseCase) GetServiceOrder(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}
	return u.fetch(ctx, osID)
}

// BeginPlanning loads the OS into the session and seeds the pending budget
// from a positive upstream value. Dates and hours start empty.
func (u *ServiceOrderLifecycleUseCase) BeginPlanning(ctx context.Context, sessionID, osID string) (entities.EditSession, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return entities.EditSession{}, err
	}
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return entities.EditSession{}, u.fail(ctx, s.ID, ErrInvalidOSID)
	}

	order, err := u.fetch(ctx, osID)
	if err != nil {
		return entities.EditSession{}, u.fail(ctx, s.ID, err)
	}
	if !entities.CanPerform(order.Status, entities.ActionFinalizePlanning) {
		return entities.EditSession{}, u.fail(ctx, s.ID, fmt.Errorf("%w: status %s", ErrNotEligible, order.Status))
	}

	s.Clear()
	s.Mode = entities.EditModePlanning
	s.OSID = order.ID
	s.LoadedVersion = order.Version
	if order.HasBudget() {
		budget := order.ValorOrcamento
		s.Planning.ValorOrcamento = &budget
	}
	if err := u.saveSession(ctx, &s); err != nil {
		return entities.EditSession{}, u.fail(ctx, s.ID, err)
	}
	u.log.WithFields(logrus.Fields{"session_id": s.ID, "os_id": order.ID, "version": order.Version}).Info("planning started")
	return s, nil
}

// UpdatePlanningFields replaces the pending planning values. The budget seed
// is kept when the new values omit it.
func (u *ServiceOrderLifecycleUseCase) UpdatePlanningFields(ctx context.Context, sessionID string, fields entities.PlanningCandidate) (entities.EditSession, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return entities.EditSession{}, err
	}
	if !s.IsEditing(entities.EditModePlanning) {
		return entities.EditSession{}, u.fail(ctx, s.ID, ErrNoActiveEdit)
	}
	if fields.ValorOrcamento == nil {
		fields.ValorOrcamento = s.Planning.ValorOrcamento
	}
	s.Planning = fields
	if err := u.saveSession(ctx, &s); err != nil {
		return entities.EditSession{}, u.fail(ctx, s.ID, err)
	}
	return s, nil
}

func (u *ServiceOrderLifecycleUseCase) CancelPlanning(ctx context.Context, sessionID string) error {
	return u.cancel(ctx, sessionID, entities.EditModePlanning)
}

// FinalizePlanning validates the pending planning values against the
// current OS, writes them and advances the OS to the next stage.
func (u *ServiceOrderLifecycleUseCase) FinalizePlanning(ctx context.Context, sessionID, osID string) (LifecycleResult, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return LifecycleResult{}, err
	}
	osID = strings.TrimSpace(osID)
	logger := u.log.WithFields(logrus.Fields{"session_id": s.ID, "os_id": osID})
	logger.Info("finalize planning start")

	current, err := u.loadEditTarget(ctx, s, osID, entities.EditModePlanning)
	if err != nil {
		logger.WithError(err).Warn("finalize planning rejected")
		return LifecycleResult{}, u.fail(ctx, s.ID, err)
	}
	next, err := entities.Transition(current.Status, entities.ActionFinalizePlanning)
	if err != nil {
		logger.WithError(err).Warn("finalize planning not eligible")
		return LifecycleResult{}, u.fail(ctx, s.ID, fmt.Errorf("%w: %v", ErrNotEligible, err))
	}

	if res := planning.ValidatePlanning(current, s.Planning); !res.OK {
		logger.WithField("reasons", res.Reasons).Info("finalize planning validation failed")
		return LifecycleResult{}, u.fail(ctx, s.ID, &ValidationError{Reasons: res.Reasons})
	}

	updated, err := u.repo.Update(ctx, current.ID, planning.PlanningUpdate(s.Planning), current.Version)
	if err != nil {
		logger.WithError(err).Error("finalize planning update failed")
		return LifecycleResult{}, u.fail(ctx, s.ID, &PersistenceError{Op: "update", Err: err})
	}

	advanced, err := u.repo.AdvanceStage(ctx, current.ID, current.Status, next)
	if err != nil {
		// Fields stay written; there is no compensating update.
		logger.WithError(err).WithField("version", updated.Version).Warn("planning fields saved but stage advance failed")
		return LifecycleResult{}, u.fail(ctx, s.ID, &StageTransitionError{OSID: current.ID, From: current.Status, To: next, Err: err})
	}

	u.finish(ctx, &s, logger)

	cost := planning.EstimateCost(advanced.HHPlanejado, advanced.HHAdicional, u.hourlyRate)
	logger.WithFields(logrus.Fields{"status": advanced.Status, "estimated_cost": format.RoundCurrency(cost)}).Info("finalize planning success")
	u.notifier.Notify(ctx, s.ID, entities.NotificationSuccess,
		fmt.Sprintf("Planning finalized for OS #%d. Estimated cost: %s.", advanced.Numero, format.BRL(cost)))

	return LifecycleResult{Order: advanced, EstimatedCost: cost}, nil
}

// BeginReplanning loads an OS in execution and pre-fills the new window with
// the current planned window.
func (u *ServiceOrderLifecycleUseCase) BeginReplanning(ctx context.Context, sessionID, osID string) (entities.EditSession, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return entities.EditSession{}, err
	}
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return entities.EditSession{}, u.fail(ctx, s.ID, ErrInvalidOSID)
	}

	order, err := u.fetch(ctx, osID)
	if err != nil {
		return entities.EditSession{}, u.fail(ctx, s.ID, err)
	}
	if !entities.CanPerform(order.Status, entities.ActionReplan) {
		return entities.EditSession{}, u.fail(ctx, s.ID, fmt.Errorf("%w: status %s", ErrNotEligible, order.Status))
	}

	s.Clear()
	s.Mode = entities.EditModeReplanning
	s.OSID = order.ID
	s.LoadedVersion = order.Version
	if order.DataInicioPrevista != nil {
		start := *order.DataInicioPrevista
		s.Replanning.NovaDataInicio = &start
	}
	if order.DataFimPrevista != nil {
		end := *order.DataFimPrevista
		s.Replanning.NovaDataFim = &end
	}
	if err := u.saveSession(ctx, &s); err != nil {
		return entities.EditSession{}, u.fail(ctx, s.ID, err)
	}
	u.log.WithFields(logrus.Fields{"session_id": s.ID, "os_id": order.ID, "version": order.Version}).Info("replanning started")
	return s, nil
}

func (u *ServiceOrderLifecycleUseCase) UpdateReplanningFields(ctx context.Context, sessionID string, fields entities.ReplanningCandidate) (entities.EditSession, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return entities.EditSession{}, err
	}
	if !s.IsEditing(entities.EditModeReplanning) {
		return entities.EditSession{}, u.fail(ctx, s.ID, ErrNoActiveEdit)
	}
	s.Replanning = fields
	if err := u.saveSession(ctx, &s); err != nil {
		return entities.EditSession{}, u.fail(ctx, s.ID, err)
	}
	return s, nil
}

func (u *ServiceOrderLifecycleUseCase) CancelReplanning(ctx context.Context, sessionID string) error {
	return u.cancel(ctx, sessionID, entities.EditModeReplanning)
}

// SubmitReplanning validates the pending replanning values and writes the
// new window, the topped-up additional HH and the justification. The stage
// is not changed.
func (u *ServiceOrderLifecycleUseCase) SubmitReplanning(ctx context.Context, sessionID, osID string) (LifecycleResult, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return LifecycleResult{}, err
	}
	osID = strings.TrimSpace(osID)
	logger := u.log.WithFields(logrus.Fields{"session_id": s.ID, "os_id": osID})
	logger.Info("submit replanning start")

	current, err := u.loadEditTarget(ctx, s, osID, entities.EditModeReplanning)
	if err != nil {
		logger.WithError(err).Warn("submit replanning rejected")
		return LifecycleResult{}, u.fail(ctx, s.ID, err)
	}
	if _, err := entities.Transition(current.Status, entities.ActionReplan); err != nil {
		logger.WithError(err).Warn("submit replanning not eligible")
		return LifecycleResult{}, u.fail(ctx, s.ID, fmt.Errorf("%w: %v", ErrNotEligible, err))
	}

	if res := planning.ValidateReplanning(current, s.Replanning); !res.OK {
		logger.WithField("reasons", res.Reasons).Info("submit replanning validation failed")
		return LifecycleResult{}, u.fail(ctx, s.ID, &ValidationError{Reasons: res.Reasons})
	}

	updated, err := u.repo.Update(ctx, current.ID, planning.ReplanningUpdate(current, s.Replanning), current.Version)
	if err != nil {
		logger.WithError(err).Error("submit replanning update failed")
		return LifecycleResult{}, u.fail(ctx, s.ID, &PersistenceError{Op: "update", Err: err})
	}

	u.finish(ctx, &s, logger)

	cost := planning.EstimateCost(updated.HHPlanejado, updated.HHAdicional, u.hourlyRate)
	logger.WithFields(logrus.Fields{"hh_adicional": updated.HHAdicional, "estimated_cost": format.RoundCurrency(cost)}).Info("submit replanning success")
	u.notifier.Notify(ctx, s.ID, entities.NotificationSuccess,
		fmt.Sprintf("Replanning saved for OS #%d. Total HH %.2f, estimated cost: %s.", updated.Numero, updated.HHTotal(), format.BRL(cost)))

	return LifecycleResult{Order: updated, EstimatedCost: cost}, nil
}

// loadEditTarget checks that the session is editing osID in mode and returns
// the OS as currently stored, rejecting it if it moved since the edit began.
// osID must already be trimmed.
func (u *ServiceOrderLifecycleUseCase) loadEditTarget(ctx context.Context, s entities.EditSession, osID string, mode entities.EditMode) (entities.ServiceOrder, error) {
	if osID == "" {
		return entities.ServiceOrder{}, ErrInvalidOSID
	}
	if !s.IsEditing(mode) {
		return entities.ServiceOrder{}, ErrNoActiveEdit
	}
	if s.OSID != osID {
		return entities.ServiceOrder{}, ErrEditTargetMismatch
	}

	current, err := u.fetch(ctx, osID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.Version != s.LoadedVersion {
		return entities.ServiceOrder{}, fmt.Errorf("%w: loaded v%d, stored v%d", ErrStaleServiceOrder, s.LoadedVersion, current.Version)
	}
	return current, nil
}

func (u *ServiceOrderLifecycleUseCase) fetch(ctx context.Context, osID string) (entities.ServiceOrder, error) {
	order, err := u.repo.GetByID(ctx, osID)
	if err != nil {
		u.log.WithError(err).WithField("os_id", osID).Error("load service order failed")
		return entities.ServiceOrder{}, &PersistenceError{Op: "get", Err: err}
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, interfaces.ErrServiceOrderNotFound
	}
	return order, nil
}

func (u *ServiceOrderLifecycleUseCase) loadSession(ctx context.Context, sessionID string) (entities.EditSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.EditSession{}, ErrInvalidSessionID
	}
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, interfaces.ErrSessionNotFound) {
			return entities.EditSession{}, err
		}
		return entities.EditSession{}, &PersistenceError{Op: "get-session", Err: err}
	}
	return s, nil
}

func (u *ServiceOrderLifecycleUseCase) saveSession(ctx context.Context, s *entities.EditSession) error {
	s.UpdatedAt = u.now()
	if err := u.sessions.Save(ctx, *s); err != nil {
		return &PersistenceError{Op: "save-session", Err: err}
	}
	return nil
}

func (u *ServiceOrderLifecycleUseCase) cancel(ctx context.Context, sessionID string, mode entities.EditMode) error {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if s.Mode != mode {
		return nil
	}
	osID := s.OSID
	s.Clear()
	if err := u.saveSession(ctx, &s); err != nil {
		return u.fail(ctx, s.ID, err)
	}
	u.log.WithFields(logrus.Fields{"session_id": s.ID, "os_id": osID, "mode": mode}).Info("edit cancelled")
	return nil
}

// finish clears the edit after a committed transition. The OS write already
// happened, so a session store failure is logged and reported but does not
// fail the operation.
func (u *ServiceOrderLifecycleUseCase) finish(ctx context.Context, s *entities.EditSession, logger *logrus.Entry) {
	s.Clear()
	if err := u.saveSession(ctx, s); err != nil {
		logger.WithError(err).Error("clear edit session failed")
		u.notifier.Notify(ctx, s.ID, entities.NotificationError, "Changes saved, but the edit form could not be reset. Reload the page.")
	}
}

// fail reports err to the operator and returns it unchanged.
func (u *ServiceOrderLifecycleUseCase) fail(ctx context.Context, sessionID string, err error) error {
	u.notifier.Notify(ctx, sessionID, entities.NotificationError, UserMessage(err))
	return err
}

// UserMessage renders err as the text of an operator notification.
func UserMessage(err error) string {
	var validationErr *ValidationError
	var stageErr *StageTransitionError
	var persistenceErr *PersistenceError

	switch {
	case errors.As(err, &validationErr):
		return strings.Join(validationErr.Reasons, " ")
	case errors.As(err, &stageErr):
		return "Fields were saved but the service order could not advance to the next stage."
	case errors.Is(err, ErrStaleServiceOrder), errors.Is(err, interfaces.ErrVersionConflict):
		return "Service order was changed by someone else. Reload it and try again."
	case errors.Is(err, interfaces.ErrServiceOrderNotFound):
		return "Service order not found."
	case errors.As(err, &persistenceErr):
		return "Could not save the service order. Try again."
	case errors.Is(err, ErrNotEligible):
		return "Service order is not eligible for this operation."
	case errors.Is(err, ErrNoActiveEdit):
		return "No service order is being edited."
	case errors.Is(err, ErrEditTargetMismatch):
		return "The service order being edited does not match the request."
	case errors.Is(err, ErrInvalidOSID):
		return "Invalid service order id."
	default:
		return "Unexpected error."
	}
}
