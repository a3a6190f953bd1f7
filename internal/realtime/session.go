package realtime

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"resume-engine/internal/config"
	"resume-engine/internal/lexicon"
	"resume-engine/internal/logging"
	"resume-engine/pkg/models"
	"resume-engine/pkg/utils"
)

// Session states. A session moves idle -> pending -> analyzed on each edit;
// the janitor marks it stale after the idle timeout and evicts it after twice
// the timeout.
const (
	StateIdle     = "idle"
	StatePending  = "pending"
	StateAnalyzed = "analyzed"
	StateStale    = "stale"
)

// session tracks one (resume, job, section, field) editing stream. Only the
// most recent edit is authoritative; version increments on every accepted
// edit so a slow evaluation can detect it has been superseded.
type session struct {
	mu           sync.Mutex
	key          string
	state        string
	version      uint64
	currentText  string
	requirements *models.JobRequirements
	suggestions  []models.OptimizationSuggestion
	limiter      *rate.Limiter
	lastActivity time.Time
}

// Manager owns all editing sessions and serializes edits within each one
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session

	engine      *ruleEngine
	cfg         *config.Config
	logger      logging.Logger
	stopJanitor chan struct{}
	janitorOnce sync.Once
}

// NewManager creates the session manager
func NewManager(cfg *config.Config, lex *lexicon.Lexicon) *Manager {
	return &Manager{
		sessions:    make(map[string]*session),
		engine:      &ruleEngine{lex: lex},
		cfg:         cfg,
		logger:      logging.GetGlobalLogger(),
		stopJanitor: make(chan struct{}),
	}
}

// SessionKey derives the session identity for an edit
func SessionKey(resumeID, jobID, section, field string) string {
	return fmt.Sprintf("%s:%s:%s:%s", resumeID, jobID, section, field)
}

// ProcessEdit applies one edit event and returns the suggestion delta against
// what the session has already issued. An edit that leaves the text unchanged
// yields an empty delta. Requirements stick to the session after the first
// edit that carries them.
func (m *Manager) ProcessEdit(ctx context.Context, req *models.EditRequest) (string, string, *models.SuggestionDelta, error) {
	if err := ctx.Err(); err != nil {
		return "", "", nil, utils.NewTimeoutError("edit cancelled before evaluation")
	}

	key := SessionKey(req.ResumeID, req.JobID, req.Section, req.Field)
	sess := m.getOrCreate(key)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.limiter.Allow() {
		return key, sess.state, nil, utils.NewRateLimitError(
			fmt.Sprintf("session %s exceeded %d edits per minute", key, m.cfg.Workers.RateLimit))
	}

	sess.lastActivity = time.Now()
	if req.Requirements != nil {
		sess.requirements = req.Requirements
	}

	// No-op edit: same text as the session already analyzed
	if sess.state == StateAnalyzed && req.NewValue == sess.currentText {
		return key, sess.state, &models.SuggestionDelta{}, nil
	}

	sess.state = StatePending
	sess.version++
	version := sess.version

	span := changedSpan(sess.currentText, req.NewValue)
	sess.currentText = req.NewValue

	current := m.engine.evaluate(req.Section, req.Field, req.NewValue, sess.requirements)
	current = m.cap(current)

	// A concurrent edit bumped the version while we evaluated; its result
	// supersedes ours. Under the session lock this cannot happen, but the
	// check keeps the invariant explicit if evaluation ever moves off-lock.
	if sess.version != version {
		return key, sess.state, &models.SuggestionDelta{}, nil
	}

	delta := diffSuggestions(sess.suggestions, current)
	sess.suggestions = current
	sess.state = StateAnalyzed

	m.logger.Debug("Edit evaluated", map[string]interface{}{
		"session_key":  key,
		"changed_span": fmt.Sprintf("[%d,%d)", span.Start, span.End),
		"added":        len(delta.Added),
		"removed":      len(delta.Removed),
		"updated":      len(delta.Updated),
	})

	return key, sess.state, delta, nil
}

// cap truncates the suggestion set to the configured maximum, keeping rule
// order so the highest-value rules survive.
func (m *Manager) cap(suggestions []models.OptimizationSuggestion) []models.OptimizationSuggestion {
	max := m.cfg.Engine.MaxSuggestions
	if max > 0 && len(suggestions) > max {
		return suggestions[:max]
	}
	return suggestions
}

// DeleteSession removes a session by key. Deleting an unknown key is not an
// error.
func (m *Manager) DeleteSession(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, existed := m.sessions[key]
	delete(m.sessions, key)
	return existed
}

// SessionCount returns the number of live sessions
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SessionState returns the state of a session, or idle for unknown keys
func (m *Manager) SessionState(key string) string {
	m.mu.RLock()
	sess, ok := m.sessions[key]
	m.mu.RUnlock()
	if !ok {
		return StateIdle
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state
}

// StartJanitor launches the background sweep that marks idle sessions stale
// and evicts abandoned ones. Stops when ctx is done or Stop is called.
func (m *Manager) StartJanitor(ctx context.Context) {
	interval := m.cfg.Engine.SessionIdleTimeout / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-m.stopJanitor:
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

// Stop terminates the janitor
func (m *Manager) Stop() {
	m.janitorOnce.Do(func() { close(m.stopJanitor) })
}

func (m *Manager) sweep() {
	idle := m.cfg.Engine.SessionIdleTimeout
	now := time.Now()
	evicted := 0

	m.mu.Lock()
	for key, sess := range m.sessions {
		sess.mu.Lock()
		age := now.Sub(sess.lastActivity)
		switch {
		case age > 2*idle:
			delete(m.sessions, key)
			evicted++
		case age > idle && sess.state != StateStale:
			sess.state = StateStale
		}
		sess.mu.Unlock()
	}
	remaining := len(m.sessions)
	m.mu.Unlock()

	if evicted > 0 {
		m.logger.Info("Swept idle editing sessions", map[string]interface{}{
			"evicted":   evicted,
			"remaining": remaining,
		})
	}
}

func (m *Manager) getOrCreate(key string) *session {
	m.mu.RLock()
	sess, ok := m.sessions[key]
	m.mu.RUnlock()
	if ok {
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok = m.sessions[key]; ok {
		return sess
	}

	perSecond := rate.Limit(float64(m.cfg.Workers.RateLimit) / 60.0)
	burst := m.cfg.Workers.RateLimit / 4
	if burst < 1 {
		burst = 1
	}
	sess = &session{
		key:          key,
		state:        StateIdle,
		limiter:      rate.NewLimiter(perSecond, burst),
		lastActivity: time.Now(),
	}
	m.sessions[key] = sess
	return sess
}

// KeyParts splits an externally supplied session key for validation
func KeyParts(key string) (resumeID, jobID, section, field string, ok bool) {
	parts := strings.SplitN(key, ":", 4)
	if len(parts) != 4 {
		return "", "", "", "", false
	}
	return parts[0], parts[1], parts[2], parts[3], true
}
