package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
	"github.com/vonadraft/draft-assistant/internal/usecase"
)

type replacementLevelDTO struct {
	Position  string    `json:"position"`
	Rank      int       `json:"rank"`
	Value     float64   `json:"value"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func replacementLevelToDTO(lvl valuation.Level) replacementLevelDTO {
	return replacementLevelDTO{
		Position:  string(lvl.Position),
		Rank:      lvl.Rank,
		Value:     lvl.Value,
		Notes:     lvl.Notes,
		UpdatedAt: lvl.UpdatedAt,
	}
}

type updateReplacementLevelsRequest struct {
	Ranks map[string]int `json:"ranks" validate:"required,min=1"`
}

func (h *Handler) ListReplacementLevels(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReplacementLevels")
	defer span.End()

	levels, err := h.replacementService.GetLevels(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list replacement levels failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]replacementLevelDTO, 0, len(levels))
	for _, lvl := range levels {
		items = append(items, replacementLevelToDTO(lvl))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateReplacementLevels(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateReplacementLevels")
	defer span.End()

	var req updateReplacementLevelsRequest
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

	ranks := make(map[player.Position]int, len(req.Ranks))
	for pos, rank := range req.Ranks {
		ranks[player.Position(pos)] = rank
	}

	if err := h.replacementService.UpdateRanks(ctx, ranks); err != nil {
		h.logger.WarnContext(ctx, "update replacement levels failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	levels, err := h.replacementService.GetLevels(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]replacementLevelDTO, 0, len(levels))
	for _, lvl := range levels {
		items = append(items, replacementLevelToDTO(lvl))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecalculateReplacementLevels(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateReplacementLevels")
	defer span.End()

	if err := h.replacementService.Recalculate(ctx); err != nil {
		h.logger.WarnContext(ctx, "recalculate replacement levels failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	levels, err := h.replacementService.GetLevels(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]replacementLevelDTO, 0, len(levels))
	for _, lvl := range levels {
		items = append(items, replacementLevelToDTO(lvl))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
