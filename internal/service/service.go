// Package service coordinates the record store, the activity index, the
// schedule and the event broker behind one facade used by the HTTP and
// MCP surfaces.
package service

import (
	"log/slog"
	"time"

	"github.com/dokonepal/doko/internal/auth"
	"github.com/dokonepal/doko/internal/index"
	"github.com/dokonepal/doko/internal/models"
	"github.com/dokonepal/doko/internal/sse"
	"github.com/dokonepal/doko/internal/stats"
	"github.com/dokonepal/doko/internal/store"
	"github.com/dokonepal/doko/internal/timeline"
)

// Service ties the stateful components together. Mutations flow through
// the store, which reports each activity entry back here; the entry is
// mirrored into the SQLite index and broadcast to SSE clients.
type Service struct {
	Store    *store.Store
	Index    index.ActivityIndex
	Schedule *timeline.Schedule
	Auth     *auth.Manager
	Broker   *sse.Broker

	logger *slog.Logger
	now    func() time.Time
}

// New wires the components and registers the activity sink.
func New(st *store.Store, idx index.ActivityIndex, sched *timeline.Schedule, mgr *auth.Manager, broker *sse.Broker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		Store:    st,
		Index:    idx,
		Schedule: sched,
		Auth:     mgr,
		Broker:   broker,
		logger:   logger,
		now:      time.Now,
	}
	st.SetActivitySink(s.onActivity)
	return s
}

// SetClock overrides the service clock, for tests.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// ReindexActivity mirrors the in-memory feed into the SQLite index. The
// index insert ignores duplicate IDs, so replaying after a reload is safe.
// Nothing is broadcast; live clients only see new entries.
func (s *Service) ReindexActivity() {
	if s.Index == nil {
		return
	}
	for _, entry := range s.Store.RecentActivity(0) {
		if err := s.Index.Insert(entry); err != nil {
			s.logger.Warn("reindex activity", slog.String("error", err.Error()))
		}
	}
}

func (s *Service) onActivity(entry models.Activity) {
	if s.Index != nil {
		if err := s.Index.Insert(entry); err != nil {
			s.logger.Warn("index activity", slog.String("error", err.Error()))
		}
	}
	if s.Broker != nil {
		s.Broker.PublishActivity(entry)
	}
}

// Login authenticates and records the login in the activity feed.
func (s *Service) Login(username, password string) (auth.Session, error) {
	sess, err := s.Auth.Login(username, password)
	if err != nil {
		return auth.Session{}, err
	}
	s.Store.RecordActivity(models.ActivityLogin, "User "+username+" logged in")
	return sess, nil
}

// Logout ends the session and records the logout.
func (s *Service) Logout(token string) error {
	if err := s.Auth.Logout(token); err != nil {
		return err
	}
	s.Store.RecordActivity(models.ActivityLogout, "User logged out")
	return nil
}

// Dashboard is the combined stats payload for the overview page.
type Dashboard struct {
	Groceries  stats.GrocerySummary   `json:"groceries"`
	Wireframes stats.WireframeSummary `json:"wireframes"`
	Trend      stats.Trend            `json:"trend"`
	Insights   stats.Insights         `json:"insights"`
}

// Dashboard computes all summaries over a single snapshot.
func (s *Service) Dashboard() Dashboard {
	groceries := s.Store.Groceries()
	wireframes := s.Store.Wireframes()
	now := s.now()
	return Dashboard{
		Groceries:  stats.Summarize(groceries),
		Wireframes: stats.SummarizeWireframes(wireframes, now),
		Trend:      stats.RecentTrend(groceries, now, stats.DefaultTrendWindowDays),
		Insights:   stats.InventoryInsights(groceries),
	}
}
