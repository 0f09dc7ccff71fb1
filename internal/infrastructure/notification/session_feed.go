package notification

import (
	"context"
	"sync"
	"time"

	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// SessionFeed buffers toasts per edit session until the UI drains them.
// Each session keeps at most capacity entries; older ones are dropped.
type SessionFeed struct {
	mu       sync.Mutex
	capacity int
	now      func() time.Time
	log      *logrus.Entry
	entries  map[string][]entities.Notification
}

var _ interfaces.INotifier = (*SessionFeed)(nil)

func NewSessionFeed(capacity int, logger *logrus.Logger) *SessionFeed {
	if capacity <= 0 {
		capacity = 50
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SessionFeed{
		capacity: capacity,
		now:      func() time.Time { return time.Now().UTC() },
		log:      logger.WithField("component", "os.notification"),
		entries:  make(map[string][]entities.Notification),
	}
}

func (f *SessionFeed) Notify(_ context.Context, sessionID string, kind entities.NotificationKind, message string) {
	n := entities.Notification{SessionID: sessionID, Kind: kind, Message: message, CreatedAt: f.now()}

	f.mu.Lock()
	list := append(f.entries[sessionID], n)
	if len(list) > f.capacity {
		list = list[len(list)-f.capacity:]
	}
	f.entries[sessionID] = list
	f.mu.Unlock()

	f.log.WithFields(logrus.Fields{"session_id": sessionID, "kind": kind}).Debug(message)
}

// Drain returns the pending notifications of a session in chronological
// order and forgets them.
func (f *SessionFeed) Drain(sessionID string) []entities.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.entries[sessionID]
	delete(f.entries, sessionID)
	if list == nil {
		return []entities.Notification{}
	}
	return list
}

// Forget drops whatever is still buffered for a session that is gone.
func (f *SessionFeed) Forget(sessionID string) {
	f.mu.Lock()
	n := len(f.entries[sessionID])
	delete(f.entries, sessionID)
	f.mu.Unlock()

	if n > 0 {
		f.log.WithFields(logrus.Fields{"session_id": sessionID, "dropped": n}).Debug("pending notifications discarded")
	}
}

// Sessions reports how many sessions have buffered notifications.
func (f *SessionFeed) Sessions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}
