package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vonadraft/draft-assistant/internal/domain/draft"
)

type DraftRepository struct {
	mu        sync.RWMutex
	configs   map[string]draft.Config
	sessions  map[string]draft.Session
	picks     map[string][]draft.Pick
	teamNames map[string][]draft.TeamName
	settings  map[string]draft.Settings
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{
		configs:   make(map[string]draft.Config),
		sessions:  make(map[string]draft.Session),
		picks:     make(map[string][]draft.Pick),
		teamNames: make(map[string][]draft.TeamName),
		settings:  make(map[string]draft.Settings),
	}
}

func (r *DraftRepository) CreateConfig(_ context.Context, cfg draft.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.configs[cfg.ID] = cfg
	return nil
}

func (r *DraftRepository) GetConfig(_ context.Context, configID string) (draft.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[configID]
	return cfg, ok, nil
}

func (r *DraftRepository) DeleteConfig(_ context.Context, configID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.configs, configID)
	return nil
}

func (r *DraftRepository) CreateSession(_ context.Context, session draft.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session
	return nil
}

func (r *DraftRepository) GetSession(_ context.Context, sessionID string) (draft.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return draft.Session{}, false, nil
	}
	session.Config = r.configs[session.ConfigID]
	return session, true, nil
}

func (r *DraftRepository) ListSessions(_ context.Context) ([]draft.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		session.Config = r.configs[session.ConfigID]
		out = append(out, session)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *DraftRepository) UpdateSessionProgress(_ context.Context, sessionID string, currentPick int, status draft.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	session.CurrentPick = currentPick
	session.Status = status
	r.sessions[sessionID] = session
	return nil
}

func (r *DraftRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	delete(r.picks, sessionID)
	delete(r.teamNames, sessionID)
	delete(r.settings, sessionID)
	return nil
}

func (r *DraftRepository) InsertPick(_ context.Context, pick draft.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.picks[pick.SessionID] = append(r.picks[pick.SessionID], pick)
	return nil
}

func (r *DraftRepository) DeletePick(_ context.Context, sessionID string, pickNumber int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	picks := r.picks[sessionID]
	kept := picks[:0]
	for _, p := range picks {
		if p.PickNumber != pickNumber {
			kept = append(kept, p)
		}
	}
	r.picks[sessionID] = kept
	return nil
}

func (r *DraftRepository) ListPicks(_ context.Context, sessionID string) ([]draft.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	picks := r.picks[sessionID]
	out := make([]draft.Pick, len(picks))
	copy(out, picks)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PickNumber < out[j].PickNumber
	})

	return out, nil
}

func (r *DraftRepository) ReplaceTeamNames(_ context.Context, sessionID string, names []draft.TeamName) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]draft.TeamName, len(names))
	copy(copied, names)
	r.teamNames[sessionID] = copied
	return nil
}

func (r *DraftRepository) ListTeamNames(_ context.Context, sessionID string) ([]draft.TeamName, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.teamNames[sessionID]
	out := make([]draft.TeamName, len(names))
	copy(out, names)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TeamNumber < out[j].TeamNumber
	})

	return out, nil
}

func (r *DraftRepository) GetSettings(_ context.Context, sessionID string) (draft.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.settings[sessionID]
	return settings, ok, nil
}

func (r *DraftRepository) UpsertSettings(_ context.Context, settings draft.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[settings.SessionID] = settings
	return nil
}
