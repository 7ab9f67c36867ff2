package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/usecase"
)

type syncProjectionsRequest struct {
	Positions  []string `json:"positions" validate:"omitempty,dive,oneof=QB RB WR TE K DST"`
	MaxWorkers int      `json:"max_workers" validate:"omitempty,min=1,max=16"`
}

func (h *Handler) RunSyncProjectionsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncProjectionsJob")
	defer span.End()

	if h.ingestionService == nil {
		writeError(ctx, w, fmt.Errorf("%w: projections feed is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req syncProjectionsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	positions := make([]player.Position, 0, len(req.Positions))
	for _, pos := range req.Positions {
		positions = append(positions, player.Position(pos))
	}

	result, err := h.ingestionService.SyncProjections(ctx, usecase.SyncInput{
		Positions:  positions,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run sync projections job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
