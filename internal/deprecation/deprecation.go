// Package deprecation carries notices for legacy names that still resolve.
package deprecation

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Notice describes one deprecated access path.
type Notice struct {
	Deprecated string `json:"deprecated"`
	Proposed   string `json:"proposed"`
	Since      string `json:"since"`
	Until      string `json:"until"`
}

// Notifier receives a Notice every time a deprecated path is used.
type Notifier func(Notice)

// Discard drops every notice.
func Discard(Notice) {}

// Log returns a Notifier that writes each notice as a warning.
func Log(logger logrus.FieldLogger) Notifier {
	return func(n Notice) {
		logger.WithFields(logrus.Fields{
			"deprecated": n.Deprecated,
			"proposed":   n.Proposed,
			"since":      n.Since,
			"until":      n.Until,
		}).Warnf("%s is deprecated since v%s and will be removed in v%s. Please use %s instead.",
			n.Deprecated, n.Since, n.Until, n.Proposed)
	}
}

// Once forwards the first notice for each deprecated path and drops repeats.
// The returned Notifier is safe for concurrent use.
func Once(next Notifier) Notifier {
	var seen sync.Map
	return func(n Notice) {
		if _, loaded := seen.LoadOrStore(n.Deprecated, struct{}{}); loaded {
			return
		}
		next(n)
	}
}

// Recorder collects notices in memory.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify records n. Pass r.Notify wherever a Notifier is expected.
func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of the recorded notices in arrival order.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}
