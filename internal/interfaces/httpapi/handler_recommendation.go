package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vonadraft/draft-assistant/internal/usecase"
)

type recommendationDTO struct {
	Player    playerDTO `json:"player"`
	VONAScore float64   `json:"vona_score"`
}

type recommendationBoardDTO struct {
	Current         currentPickDTO      `json:"current"`
	PicksUntilTurn  int                 `json:"picks_until_turn"`
	Recommendations []recommendationDTO `json:"recommendations"`
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecommendations")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	query := r.URL.Query()

	filter := usecase.RecommendationFilter{
		Position: strings.TrimSpace(query.Get("position")),
	}
	if rawLimit := strings.TrimSpace(query.Get("limit")); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 1 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		filter.Limit = limit
	}

	board, err := h.recommendationService.Board(ctx, sessionID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "get recommendations failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]recommendationDTO, 0, len(board.Recommendations))
	for _, rec := range board.Recommendations {
		items = append(items, recommendationDTO{
			Player:    playerToDTO(rec.Player),
			VONAScore: rec.VONAScore,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, recommendationBoardDTO{
		Current:         currentPickToDTO(board.Current),
		PicksUntilTurn:  board.PicksUntilTurn,
		Recommendations: items,
	})
}
