package usecase

import (
	"errors"
	"testing"

	"github.com/vonadraft/draft-assistant/internal/domain/draft"
	"github.com/vonadraft/draft-assistant/internal/infrastructure/repository/memory"
	"github.com/vonadraft/draft-assistant/internal/platform/id"
	"github.com/vonadraft/draft-assistant/internal/platform/logging"
)

func newTestDraftService() *DraftService {
	return NewDraftService(
		memory.NewDraftRepository(),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		id.NewRandomGenerator(),
		logging.NewNop(),
	)
}

func createTestDraft(t *testing.T, svc *DraftService, input CreateDraftInput) SessionDetail {
	t.Helper()

	detail, err := svc.CreateDraft(t.Context(), input)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	return detail
}

func TestDraftService_CreateDraft_Defaults(t *testing.T) {
	svc := newTestDraftService()

	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  10,
		NumRounds: 16,
		DraftType: "snake",
	})

	if detail.Session.CurrentPick != 1 {
		t.Fatalf("unexpected current pick: got=%d want=1", detail.Session.CurrentPick)
	}
	if detail.Session.Status != draft.StatusActive {
		t.Fatalf("unexpected status: %s", detail.Session.Status)
	}
	if detail.Session.Name == "" {
		t.Fatalf("expected a generated session name")
	}
	if len(detail.Teams) != 10 {
		t.Fatalf("unexpected team count: got=%d want=10", len(detail.Teams))
	}
	if detail.Teams[0].Name != "Team 1" || detail.Teams[9].Name != "Team 10" {
		t.Fatalf("unexpected default team names: %q, %q", detail.Teams[0].Name, detail.Teams[9].Name)
	}
	if detail.Settings.SessionID != detail.Session.ID {
		t.Fatalf("settings not bound to session: %s", detail.Settings.SessionID)
	}
}

func TestDraftService_CreateDraft_CustomTeamNames(t *testing.T) {
	svc := newTestDraftService()

	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  3,
		NumRounds: 5,
		DraftType: "straight",
		TeamNames: []string{"Gridiron Gang", "  ", "Waiver Wishers"},
	})

	if detail.Teams[0].Name != "Gridiron Gang" {
		t.Fatalf("unexpected team 1 name: %q", detail.Teams[0].Name)
	}
	// Blank entries fall back to the numbered default.
	if detail.Teams[1].Name != "Team 2" {
		t.Fatalf("unexpected team 2 name: %q", detail.Teams[1].Name)
	}
	if detail.Teams[2].Name != "Waiver Wishers" {
		t.Fatalf("unexpected team 3 name: %q", detail.Teams[2].Name)
	}
}

func TestDraftService_CreateDraft_Invalid(t *testing.T) {
	svc := newTestDraftService()

	tests := []struct {
		name  string
		input CreateDraftInput
		want  error
	}{
		{
			name:  "missing name",
			input: CreateDraftInput{NumTeams: 10, NumRounds: 16, DraftType: "snake"},
			want:  ErrInvalidInput,
		},
		{
			name:  "unknown draft type",
			input: CreateDraftInput{Name: "x", NumTeams: 10, NumRounds: 16, DraftType: "auction"},
			want:  draft.ErrInvalidConfig,
		},
		{
			name:  "zero teams",
			input: CreateDraftInput{Name: "x", NumTeams: 0, NumRounds: 16, DraftType: "snake"},
			want:  draft.ErrInvalidConfig,
		},
		{
			name:  "team name count mismatch",
			input: CreateDraftInput{Name: "x", NumTeams: 4, NumRounds: 8, DraftType: "snake", TeamNames: []string{"A", "B"}},
			want:  ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateDraft(t.Context(), tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDraftService_GetSession_NotFound(t *testing.T) {
	svc := newTestDraftService()

	_, err := svc.GetSession(t.Context(), "no-such-session")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDraftService_RecordPick_AdvancesClock(t *testing.T) {
	svc := newTestDraftService()
	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  4,
		NumRounds: 3,
		DraftType: "snake",
	})

	pick, err := svc.RecordPick(t.Context(), RecordPickInput{
		SessionID: detail.Session.ID,
		PlayerID:  "jamarr-chase-wr",
	})
	if err != nil {
		t.Fatalf("record pick failed: %v", err)
	}
	if pick.PickNumber != 1 || pick.Round != 1 || pick.TeamNumber != 1 {
		t.Fatalf("unexpected slot: pick=%d round=%d team=%d", pick.PickNumber, pick.Round, pick.TeamNumber)
	}
	if pick.PlayerName != "Ja'Marr Chase" {
		t.Fatalf("unexpected player name: %q", pick.PlayerName)
	}

	current, err := svc.CurrentPick(t.Context(), detail.Session.ID)
	if err != nil {
		t.Fatalf("current pick failed: %v", err)
	}
	if current.PickNumber != 2 || current.TeamNumber != 2 {
		t.Fatalf("clock did not advance: pick=%d team=%d", current.PickNumber, current.TeamNumber)
	}
}

func TestDraftService_RecordPick_Conflicts(t *testing.T) {
	svc := newTestDraftService()
	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  4,
		NumRounds: 3,
		DraftType: "snake",
	})
	sessionID := detail.Session.ID

	if _, err := svc.RecordPick(t.Context(), RecordPickInput{SessionID: sessionID, PlayerID: "bijan-robinson-rb"}); err != nil {
		t.Fatalf("record pick failed: %v", err)
	}

	t.Run("stale pick number", func(t *testing.T) {
		_, err := svc.RecordPick(t.Context(), RecordPickInput{SessionID: sessionID, PlayerID: "jahmyr-gibbs-rb", PickNumber: 1})
		if !errors.Is(err, draft.ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}
	})

	t.Run("player already drafted", func(t *testing.T) {
		_, err := svc.RecordPick(t.Context(), RecordPickInput{SessionID: sessionID, PlayerID: "bijan-robinson-rb"})
		if !errors.Is(err, draft.ErrPlayerDrafted) {
			t.Fatalf("expected ErrPlayerDrafted, got %v", err)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := svc.RecordPick(t.Context(), RecordPickInput{SessionID: sessionID, PlayerID: "barry-sanders-rb"})
		if !errors.Is(err, draft.ErrUnknownPlayer) {
			t.Fatalf("expected ErrUnknownPlayer, got %v", err)
		}
	})
}

func TestDraftService_RecordPick_CompletesDraft(t *testing.T) {
	svc := newTestDraftService()
	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Two Round Sprint",
		NumTeams:  2,
		NumRounds: 1,
		DraftType: "snake",
	})
	sessionID := detail.Session.ID

	for _, playerID := range []string{"jamarr-chase-wr", "bijan-robinson-rb"} {
		if _, err := svc.RecordPick(t.Context(), RecordPickInput{SessionID: sessionID, PlayerID: playerID}); err != nil {
			t.Fatalf("record pick failed: %v", err)
		}
	}

	current, err := svc.CurrentPick(t.Context(), sessionID)
	if err != nil {
		t.Fatalf("current pick failed: %v", err)
	}
	if !current.Complete {
		t.Fatalf("expected draft to be complete")
	}

	_, err = svc.RecordPick(t.Context(), RecordPickInput{SessionID: sessionID, PlayerID: "justin-jefferson-wr"})
	if !errors.Is(err, draft.ErrDraftComplete) {
		t.Fatalf("expected ErrDraftComplete, got %v", err)
	}
}

func TestDraftService_UndoLastPick_RestoresAvailability(t *testing.T) {
	svc := newTestDraftService()
	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  4,
		NumRounds: 3,
		DraftType: "snake",
	})
	sessionID := detail.Session.ID

	for _, playerID := range []string{"jamarr-chase-wr", "bijan-robinson-rb"} {
		if _, err := svc.RecordPick(t.Context(), RecordPickInput{SessionID: sessionID, PlayerID: playerID}); err != nil {
			t.Fatalf("record pick failed: %v", err)
		}
	}

	undone, err := svc.UndoLastPick(t.Context(), sessionID)
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if undone.PlayerID != "bijan-robinson-rb" || undone.PickNumber != 2 {
		t.Fatalf("unexpected undone pick: player=%s pick=%d", undone.PlayerID, undone.PickNumber)
	}

	current, err := svc.CurrentPick(t.Context(), sessionID)
	if err != nil {
		t.Fatalf("current pick failed: %v", err)
	}
	if current.PickNumber != 2 {
		t.Fatalf("clock not rewound: pick=%d", current.PickNumber)
	}

	available, err := svc.AvailablePlayers(t.Context(), sessionID)
	if err != nil {
		t.Fatalf("available players failed: %v", err)
	}
	found := false
	for _, p := range available {
		if p.ID == "bijan-robinson-rb" {
			found = true
		}
		if p.ID == "jamarr-chase-wr" {
			t.Fatalf("drafted player still listed as available")
		}
	}
	if !found {
		t.Fatalf("undone player missing from the available pool")
	}
}

func TestDraftService_UndoLastPick_Empty(t *testing.T) {
	svc := newTestDraftService()
	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  4,
		NumRounds: 3,
		DraftType: "snake",
	})

	_, err := svc.UndoLastPick(t.Context(), detail.Session.ID)
	if !errors.Is(err, draft.ErrNoPicks) {
		t.Fatalf("expected ErrNoPicks, got %v", err)
	}
}

func TestDraftService_AvailablePlayers_ADPOrdering(t *testing.T) {
	svc := newTestDraftService()
	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  10,
		NumRounds: 16,
		DraftType: "snake",
	})

	available, err := svc.AvailablePlayers(t.Context(), detail.Session.ID)
	if err != nil {
		t.Fatalf("available players failed: %v", err)
	}
	if len(available) == 0 {
		t.Fatalf("expected a seeded pool")
	}

	lastADP := 0.0
	seenNoADP := false
	for _, p := range available {
		if p.ADP == nil {
			seenNoADP = true
			continue
		}
		if seenNoADP {
			t.Fatalf("player %s with ADP listed after unranked players", p.ID)
		}
		if *p.ADP < lastADP {
			t.Fatalf("ADP ordering broken at %s: %v after %v", p.ID, *p.ADP, lastADP)
		}
		lastADP = *p.ADP
	}
	if !seenNoADP {
		t.Fatalf("expected unranked players at the tail of the pool")
	}
}

func TestDraftService_DeleteSession(t *testing.T) {
	svc := newTestDraftService()
	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  4,
		NumRounds: 3,
		DraftType: "snake",
	})

	if err := svc.DeleteSession(t.Context(), detail.Session.ID); err != nil {
		t.Fatalf("delete session failed: %v", err)
	}

	_, err := svc.GetSession(t.Context(), detail.Session.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDraftService_UpdateSettings_Validation(t *testing.T) {
	svc := newTestDraftService()
	detail := createTestDraft(t, svc, CreateDraftInput{
		Name:      "Office League",
		NumTeams:  4,
		NumRounds: 3,
		DraftType: "snake",
	})

	team := 3
	settings, err := svc.UpdateSettings(t.Context(), UpdateSettingsInput{
		SessionID:    detail.Session.ID,
		MyTeamNumber: &team,
		Notes:        "  target RBs early  ",
	})
	if err != nil {
		t.Fatalf("update settings failed: %v", err)
	}
	if settings.MyTeamNumber == nil || *settings.MyTeamNumber != 3 {
		t.Fatalf("unexpected my team number: %v", settings.MyTeamNumber)
	}
	if settings.Notes != "target RBs early" {
		t.Fatalf("unexpected notes: %q", settings.Notes)
	}

	outOfRange := 9
	_, err = svc.UpdateSettings(t.Context(), UpdateSettingsInput{
		SessionID:    detail.Session.ID,
		MyTeamNumber: &outOfRange,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
