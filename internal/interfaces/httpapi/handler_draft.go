package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/vonadraft/draft-assistant/internal/domain/draft"
	"github.com/vonadraft/draft-assistant/internal/usecase"
)

type draftConfigDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NumTeams  int    `json:"num_teams"`
	NumRounds int    `json:"num_rounds"`
	DraftType string `json:"draft_type"`
}

type draftSessionDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Config      draftConfigDTO `json:"config"`
	CurrentPick int            `json:"current_pick"`
	TotalPicks  int            `json:"total_picks"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type draftSessionDetailDTO struct {
	draftSessionDTO
	Teams    []teamNameDTO    `json:"teams"`
	Settings draftSettingsDTO `json:"settings"`
}

type teamNameDTO struct {
	TeamNumber int    `json:"team_number"`
	Name       string `json:"name"`
}

type draftSettingsDTO struct {
	MyTeamNumber *int      `json:"my_team_number,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type draftSlotDTO struct {
	PickNumber int `json:"pick_number"`
	Round      int `json:"round"`
	TeamNumber int `json:"team_number"`
}

type currentPickDTO struct {
	PickNumber int    `json:"pick_number"`
	Round      int    `json:"round"`
	TeamNumber int    `json:"team_number"`
	TeamName   string `json:"team_name,omitempty"`
	Complete   bool   `json:"complete"`
}

type draftPickDTO struct {
	ID         string    `json:"id"`
	PickNumber int       `json:"pick_number"`
	Round      int       `json:"round"`
	TeamNumber int       `json:"team_number"`
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Position   string    `json:"position"`
	ValueScore float64   `json:"value_score"`
	VONAScore  float64   `json:"vona_score"`
	PickedAt   time.Time `json:"picked_at"`
}

type createDraftRequest struct {
	Name        string   `json:"name" validate:"required,max=120"`
	NumTeams    int      `json:"num_teams" validate:"required,min=1,max=32"`
	NumRounds   int      `json:"num_rounds" validate:"required,min=1,max=40"`
	DraftType   string   `json:"draft_type" validate:"required,oneof=snake straight"`
	SessionName string   `json:"session_name" validate:"omitempty,max=120"`
	TeamNames   []string `json:"team_names" validate:"omitempty,dive,max=80"`
}

type recordPickRequest struct {
	PlayerID   string `json:"player_id" validate:"required"`
	PickNumber int    `json:"pick_number" validate:"omitempty,min=1"`
}

type updateTeamNamesRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,max=80"`
}

type updateSettingsRequest struct {
	MyTeamNumber *int   `json:"my_team_number" validate:"omitempty,min=1"`
	Notes        string `json:"notes" validate:"omitempty,max=2000"`
}

func sessionToDTO(s draft.Session) draftSessionDTO {
	return draftSessionDTO{
		ID:   s.ID,
		Name: s.Name,
		Config: draftConfigDTO{
			ID:        s.Config.ID,
			Name:      s.Config.Name,
			NumTeams:  s.Config.NumTeams,
			NumRounds: s.Config.NumRounds,
			DraftType: string(s.Config.Type),
		},
		CurrentPick: s.CurrentPick,
		TotalPicks:  s.Config.TotalPicks(),
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func sessionDetailToDTO(detail usecase.SessionDetail) draftSessionDetailDTO {
	teams := make([]teamNameDTO, 0, len(detail.Teams))
	for _, t := range detail.Teams {
		teams = append(teams, teamNameDTO{TeamNumber: t.TeamNumber, Name: t.Name})
	}

	return draftSessionDetailDTO{
		draftSessionDTO: sessionToDTO(detail.Session),
		Teams:           teams,
		Settings: draftSettingsDTO{
			MyTeamNumber: detail.Settings.MyTeamNumber,
			Notes:        detail.Settings.Notes,
			UpdatedAt:    detail.Settings.UpdatedAt,
		},
	}
}

func pickToDTO(p draft.Pick) draftPickDTO {
	return draftPickDTO{
		ID:         p.ID,
		PickNumber: p.PickNumber,
		Round:      p.Round,
		TeamNumber: p.TeamNumber,
		PlayerID:   p.PlayerID,
		PlayerName: p.PlayerName,
		Position:   p.Position,
		ValueScore: p.ValueScore,
		VONAScore:  p.VONAScore,
		PickedAt:   p.PickedAt,
	}
}

func currentPickToDTO(info usecase.CurrentPickInfo) currentPickDTO {
	return currentPickDTO{
		PickNumber: info.PickNumber,
		Round:      info.Round,
		TeamNumber: info.TeamNumber,
		TeamName:   info.TeamName,
		Complete:   info.Complete,
	}
}

func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDraft")
	defer span.End()

	var req createDraftRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.draftService.CreateDraft(ctx, usecase.CreateDraftInput{
		Name:        req.Name,
		NumTeams:    req.NumTeams,
		NumRounds:   req.NumRounds,
		DraftType:   req.DraftType,
		SessionName: req.SessionName,
		TeamNames:   req.TeamNames,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create draft failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionDetailToDTO(detail))
}

func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDrafts")
	defer span.End()

	sessions, err := h.draftService.ListSessions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list drafts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]draftSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, sessionToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraft")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	detail, err := h.draftService.GetSession(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionDetailToDTO(detail))
}

func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDraft")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	if err := h.draftService.DeleteSession(ctx, sessionID); err != nil {
		h.logger.WarnContext(ctx, "delete draft failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) GetDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftOrder")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	slots, err := h.draftService.Order(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft order failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]draftSlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, draftSlotDTO{
			PickNumber: slot.PickNumber,
			Round:      slot.Round,
			TeamNumber: slot.TeamNumber,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCurrentPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentPick")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	info, err := h.draftService.CurrentPick(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get current pick failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentPickToDTO(info))
}

func (h *Handler) ListDraftPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDraftPicks")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	picks, err := h.draftService.ListPicks(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list draft picks failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]draftPickDTO, 0, len(picks))
	for _, p := range picks {
		items = append(items, pickToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecordDraftPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordDraftPick")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))

	var req recordPickRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pick, err := h.draftService.RecordPick(ctx, usecase.RecordPickInput{
		SessionID:  sessionID,
		PlayerID:   req.PlayerID,
		PickNumber: req.PickNumber,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record pick failed", "session_id", sessionID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, pickToDTO(pick))
}

func (h *Handler) UndoLastPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UndoLastPick")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	pick, err := h.draftService.UndoLastPick(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "undo last pick failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(pick))
}

func (h *Handler) ListAvailablePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAvailablePlayers")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	players, err := h.draftService.AvailablePlayers(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list available players failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateDraftTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDraftTeams")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))

	var req updateTeamNamesRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	names, err := h.draftService.UpdateTeamNames(ctx, sessionID, req.Names)
	if err != nil {
		h.logger.WarnContext(ctx, "update team names failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamNameDTO, 0, len(names))
	for _, n := range names {
		items = append(items, teamNameDTO{TeamNumber: n.TeamNumber, Name: n.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDraftSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftSettings")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	settings, err := h.draftService.GetSettings(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft settings failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftSettingsDTO{
		MyTeamNumber: settings.MyTeamNumber,
		Notes:        settings.Notes,
		UpdatedAt:    settings.UpdatedAt,
	})
}

func (h *Handler) UpdateDraftSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDraftSettings")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))

	var req updateSettingsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	settings, err := h.draftService.UpdateSettings(ctx, usecase.UpdateSettingsInput{
		SessionID:    sessionID,
		MyTeamNumber: req.MyTeamNumber,
		Notes:        req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update draft settings failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftSettingsDTO{
		MyTeamNumber: settings.MyTeamNumber,
		Notes:        settings.Notes,
		UpdatedAt:    settings.UpdatedAt,
	})
}
