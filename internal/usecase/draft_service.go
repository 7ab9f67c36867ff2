package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vonadraft/draft-assistant/internal/domain/draft"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
	idgen "github.com/vonadraft/draft-assistant/internal/platform/id"
	"github.com/vonadraft/draft-assistant/internal/platform/logging"
)

type CreateDraftInput struct {
	Name        string
	NumTeams    int
	NumRounds   int
	DraftType   string
	SessionName string
	TeamNames   []string
}

type RecordPickInput struct {
	SessionID string
	PlayerID  string
	// PickNumber pins the slot being filled; zero means the session's
	// current pick. A stale value is rejected rather than reinterpreted.
	PickNumber int
}

type UpdateSettingsInput struct {
	SessionID    string
	MyTeamNumber *int
	Notes        string
}

// SessionDetail bundles a session with its config, franchises and settings.
type SessionDetail struct {
	Session  draft.Session
	Teams    []draft.TeamName
	Settings draft.Settings
}

// CurrentPickInfo describes the slot on the clock.
type CurrentPickInfo struct {
	PickNumber int
	Round      int
	TeamNumber int
	TeamName   string
	Complete   bool
}

// DraftService owns draft session lifecycle and pick mutations.
type DraftService struct {
	draftRepo  draft.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewDraftService(
	draftRepo draft.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftService{
		draftRepo:  draftRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *DraftService) CreateDraft(ctx context.Context, input CreateDraftInput) (SessionDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CreateDraft")
	defer span.End()

	cfg := draft.Config{
		Name:      strings.TrimSpace(input.Name),
		NumTeams:  input.NumTeams,
		NumRounds: input.NumRounds,
		Type:      draft.Type(strings.ToLower(strings.TrimSpace(input.DraftType))),
		CreatedAt: s.now(),
	}
	if cfg.Name == "" {
		return SessionDetail{}, fmt.Errorf("%w: draft name is required", ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return SessionDetail{}, err
	}
	if len(input.TeamNames) != 0 && len(input.TeamNames) != cfg.NumTeams {
		return SessionDetail{}, fmt.Errorf("%w: expected %d team names, got %d", ErrInvalidInput, cfg.NumTeams, len(input.TeamNames))
	}

	configID, err := s.idGen.NewID()
	if err != nil {
		return SessionDetail{}, fmt.Errorf("generate config id: %w", err)
	}
	sessionID, err := s.idGen.NewID()
	if err != nil {
		return SessionDetail{}, fmt.Errorf("generate session id: %w", err)
	}
	cfg.ID = configID

	sessionName := strings.TrimSpace(input.SessionName)
	if sessionName == "" {
		sessionName = fmt.Sprintf("%s %s", cfg.Name, s.now().Format("2006-01-02"))
	}

	session := draft.Session{
		ID:          sessionID,
		ConfigID:    configID,
		Config:      cfg,
		Name:        sessionName,
		CurrentPick: 1,
		Status:      draft.StatusActive,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	if err := s.draftRepo.CreateConfig(ctx, cfg); err != nil {
		return SessionDetail{}, fmt.Errorf("create draft config: %w", err)
	}
	if err := s.draftRepo.CreateSession(ctx, session); err != nil {
		return SessionDetail{}, fmt.Errorf("create draft session: %w", err)
	}

	teams := make([]draft.TeamName, 0, cfg.NumTeams)
	for i := 1; i <= cfg.NumTeams; i++ {
		name := fmt.Sprintf("Team %d", i)
		if len(input.TeamNames) != 0 {
			if trimmed := strings.TrimSpace(input.TeamNames[i-1]); trimmed != "" {
				name = trimmed
			}
		}
		teams = append(teams, draft.TeamName{
			SessionID:  sessionID,
			TeamNumber: i,
			Name:       name,
		})
	}
	if err := s.draftRepo.ReplaceTeamNames(ctx, sessionID, teams); err != nil {
		return SessionDetail{}, fmt.Errorf("store team names: %w", err)
	}

	settings := draft.Settings{
		SessionID: sessionID,
		UpdatedAt: s.now(),
	}
	if err := s.draftRepo.UpsertSettings(ctx, settings); err != nil {
		return SessionDetail{}, fmt.Errorf("store default settings: %w", err)
	}

	s.logger.InfoContext(ctx, "draft session created",
		"session_id", sessionID,
		"teams", cfg.NumTeams,
		"rounds", cfg.NumRounds,
		"draft_type", cfg.Type,
	)

	return SessionDetail{Session: session, Teams: teams, Settings: settings}, nil
}

func (s *DraftService) ListSessions(ctx context.Context) ([]draft.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListSessions")
	defer span.End()

	sessions, err := s.draftRepo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list draft sessions: %w", err)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	return sessions, nil
}

func (s *DraftService) GetSession(ctx context.Context, sessionID string) (SessionDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GetSession")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return SessionDetail{}, err
	}

	teams, err := s.draftRepo.ListTeamNames(ctx, session.ID)
	if err != nil {
		return SessionDetail{}, fmt.Errorf("list team names: %w", err)
	}

	settings, exists, err := s.draftRepo.GetSettings(ctx, session.ID)
	if err != nil {
		return SessionDetail{}, fmt.Errorf("get settings: %w", err)
	}
	if !exists {
		settings = draft.Settings{SessionID: session.ID}
	}

	return SessionDetail{Session: session, Teams: teams, Settings: settings}, nil
}

// DeleteSession removes the session and everything hanging off it, config
// included.
func (s *DraftService) DeleteSession(ctx context.Context, sessionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.DeleteSession")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.draftRepo.DeleteSession(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.draftRepo.DeleteConfig(ctx, session.ConfigID); err != nil {
		return fmt.Errorf("delete config: %w", err)
	}

	s.logger.InfoContext(ctx, "draft session deleted", "session_id", session.ID)
	return nil
}

// Order returns the full pick schedule for a session's config.
func (s *DraftService) Order(ctx context.Context, sessionID string) ([]draft.Slot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Order")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return draft.GenerateOrder(session.Config)
}

func (s *DraftService) CurrentPick(ctx context.Context, sessionID string) (CurrentPickInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CurrentPick")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return CurrentPickInfo{}, err
	}

	if session.Complete() {
		return CurrentPickInfo{Complete: true}, nil
	}

	slot, err := draft.SlotForPick(session.Config, session.CurrentPick)
	if err != nil {
		return CurrentPickInfo{}, err
	}

	teamName := fmt.Sprintf("Team %d", slot.TeamNumber)
	teams, err := s.draftRepo.ListTeamNames(ctx, session.ID)
	if err != nil {
		return CurrentPickInfo{}, fmt.Errorf("list team names: %w", err)
	}
	for _, t := range teams {
		if t.TeamNumber == slot.TeamNumber {
			teamName = t.Name
			break
		}
	}

	return CurrentPickInfo{
		PickNumber: slot.PickNumber,
		Round:      slot.Round,
		TeamNumber: slot.TeamNumber,
		TeamName:   teamName,
	}, nil
}

func (s *DraftService) ListPicks(ctx context.Context, sessionID string) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListPicks")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	picks, err := s.draftRepo.ListPicks(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	sort.Slice(picks, func(i, j int) bool {
		return picks[i].PickNumber < picks[j].PickNumber
	})

	return picks, nil
}

// RecordPick fills the slot on the clock with a player. Every failure leaves
// session state untouched.
func (s *DraftService) RecordPick(ctx context.Context, input RecordPickInput) (draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.RecordPick")
	defer span.End()

	session, err := s.requireSession(ctx, input.SessionID)
	if err != nil {
		return draft.Pick{}, err
	}
	if session.Status == draft.StatusCompleted || session.Complete() {
		return draft.Pick{}, draft.ErrDraftComplete
	}
	if session.Status != draft.StatusActive {
		return draft.Pick{}, draft.ErrSessionClosed
	}

	playerID := strings.TrimSpace(input.PlayerID)
	if playerID == "" {
		return draft.Pick{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	pickNumber := input.PickNumber
	if pickNumber == 0 {
		pickNumber = session.CurrentPick
	}
	if pickNumber != session.CurrentPick {
		return draft.Pick{}, fmt.Errorf("%w: pick %d is not on the clock (current %d)", draft.ErrSlotTaken, pickNumber, session.CurrentPick)
	}

	picks, err := s.draftRepo.ListPicks(ctx, session.ID)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("list picks: %w", err)
	}
	for _, existing := range picks {
		if existing.PickNumber == pickNumber {
			return draft.Pick{}, fmt.Errorf("%w: pick %d", draft.ErrSlotTaken, pickNumber)
		}
		if existing.PlayerID == playerID {
			return draft.Pick{}, fmt.Errorf("%w: %s at pick %d", draft.ErrPlayerDrafted, existing.PlayerName, existing.PickNumber)
		}
	}

	selected, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return draft.Pick{}, fmt.Errorf("%w: %s", draft.ErrUnknownPlayer, playerID)
	}

	slot, err := draft.SlotForPick(session.Config, pickNumber)
	if err != nil {
		return draft.Pick{}, err
	}

	available, err := s.availableFrom(ctx, picks)
	if err != nil {
		return draft.Pick{}, err
	}
	vona := valuation.VONAScores(valuation.Input{
		CurrentPick: pickNumber,
		NumTeams:    session.Config.NumTeams,
		DraftType:   session.Config.Type,
		Available:   available,
	})[playerID]

	pickID, err := s.idGen.NewID()
	if err != nil {
		return draft.Pick{}, fmt.Errorf("generate pick id: %w", err)
	}

	pick := draft.Pick{
		ID:         pickID,
		SessionID:  session.ID,
		PickNumber: slot.PickNumber,
		Round:      slot.Round,
		TeamNumber: slot.TeamNumber,
		PlayerID:   selected.ID,
		PlayerName: selected.Name,
		Position:   string(selected.Position),
		ValueScore: selected.ValueScore,
		VONAScore:  vona,
		PickedAt:   s.now(),
	}
	if err := s.draftRepo.InsertPick(ctx, pick); err != nil {
		return draft.Pick{}, fmt.Errorf("insert pick: %w", err)
	}

	nextPick := pickNumber + 1
	status := draft.StatusActive
	if nextPick > session.Config.TotalPicks() {
		status = draft.StatusCompleted
	}
	if err := s.draftRepo.UpdateSessionProgress(ctx, session.ID, nextPick, status); err != nil {
		return draft.Pick{}, fmt.Errorf("advance session: %w", err)
	}

	s.logger.InfoContext(ctx, "pick recorded",
		"session_id", session.ID,
		"pick", slot.PickNumber,
		"round", slot.Round,
		"team", slot.TeamNumber,
		"player", selected.Name,
	)

	return pick, nil
}

// UndoLastPick removes the most recent pick and rewinds the clock to it.
func (s *DraftService) UndoLastPick(ctx context.Context, sessionID string) (draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.UndoLastPick")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return draft.Pick{}, err
	}

	picks, err := s.draftRepo.ListPicks(ctx, session.ID)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("list picks: %w", err)
	}
	if len(picks) == 0 {
		return draft.Pick{}, draft.ErrNoPicks
	}

	last := picks[0]
	for _, p := range picks[1:] {
		if p.PickNumber > last.PickNumber {
			last = p
		}
	}

	if err := s.draftRepo.DeletePick(ctx, session.ID, last.PickNumber); err != nil {
		return draft.Pick{}, fmt.Errorf("delete pick: %w", err)
	}
	if err := s.draftRepo.UpdateSessionProgress(ctx, session.ID, last.PickNumber, draft.StatusActive); err != nil {
		return draft.Pick{}, fmt.Errorf("rewind session: %w", err)
	}

	s.logger.InfoContext(ctx, "pick undone",
		"session_id", session.ID,
		"pick", last.PickNumber,
		"player", last.PlayerName,
	)

	return last, nil
}

// AvailablePlayers is the catalog minus everyone drafted in the session,
// ordered by ADP with unranked players last.
func (s *DraftService) AvailablePlayers(ctx context.Context, sessionID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.AvailablePlayers")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	picks, err := s.draftRepo.ListPicks(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	return s.availableFrom(ctx, picks)
}

func (s *DraftService) UpdateTeamNames(ctx context.Context, sessionID string, names []string) ([]draft.TeamName, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.UpdateTeamNames")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(names) != session.Config.NumTeams {
		return nil, fmt.Errorf("%w: expected %d team names, got %d", ErrInvalidInput, session.Config.NumTeams, len(names))
	}

	teams := make([]draft.TeamName, 0, len(names))
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			trimmed = fmt.Sprintf("Team %d", i+1)
		}
		teams = append(teams, draft.TeamName{
			SessionID:  session.ID,
			TeamNumber: i + 1,
			Name:       trimmed,
		})
	}

	if err := s.draftRepo.ReplaceTeamNames(ctx, session.ID, teams); err != nil {
		return nil, fmt.Errorf("replace team names: %w", err)
	}

	return teams, nil
}

func (s *DraftService) GetSettings(ctx context.Context, sessionID string) (draft.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GetSettings")
	defer span.End()

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return draft.Settings{}, err
	}

	settings, exists, err := s.draftRepo.GetSettings(ctx, session.ID)
	if err != nil {
		return draft.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	if !exists {
		return draft.Settings{SessionID: session.ID}, nil
	}

	return settings, nil
}

func (s *DraftService) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (draft.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.UpdateSettings")
	defer span.End()

	session, err := s.requireSession(ctx, input.SessionID)
	if err != nil {
		return draft.Settings{}, err
	}

	if input.MyTeamNumber != nil {
		if *input.MyTeamNumber < 1 || *input.MyTeamNumber > session.Config.NumTeams {
			return draft.Settings{}, fmt.Errorf("%w: my_team_number must be between 1 and %d", ErrInvalidInput, session.Config.NumTeams)
		}
	}

	settings := draft.Settings{
		SessionID:    session.ID,
		MyTeamNumber: input.MyTeamNumber,
		Notes:        strings.TrimSpace(input.Notes),
		UpdatedAt:    s.now(),
	}
	if err := s.draftRepo.UpsertSettings(ctx, settings); err != nil {
		return draft.Settings{}, fmt.Errorf("upsert settings: %w", err)
	}

	return settings, nil
}

func (s *DraftService) requireSession(ctx context.Context, sessionID string) (draft.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return draft.Session{}, fmt.Errorf("%w: session_id is required", ErrInvalidInput)
	}

	session, exists, err := s.draftRepo.GetSession(ctx, sessionID)
	if err != nil {
		return draft.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return draft.Session{}, fmt.Errorf("%w: draft session %s", ErrNotFound, sessionID)
	}

	return session, nil
}

func (s *DraftService) availableFrom(ctx context.Context, picks []draft.Pick) ([]player.Player, error) {
	players, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	drafted := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		drafted[p.PlayerID] = struct{}{}
	}

	available := make([]player.Player, 0, len(players))
	for _, p := range players {
		if _, gone := drafted[p.ID]; gone {
			continue
		}
		available = append(available, p)
	}

	sort.SliceStable(available, func(i, j int) bool {
		left, right := available[i].ADP, available[j].ADP
		switch {
		case left == nil && right == nil:
			return false
		case left == nil:
			return false
		case right == nil:
			return true
		default:
			return *left < *right
		}
	})

	return available, nil
}
