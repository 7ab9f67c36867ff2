package httpapi

import (
	"net/http"
	"strings"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/usecase"
)

type playerDTO struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Team       string   `json:"team,omitempty"`
	Position   string   `json:"position"`
	ByeWeek    *int     `json:"bye_week,omitempty"`
	Projection float64  `json:"projection"`
	ADP        *float64 `json:"adp,omitempty"`
	ValueScore float64  `json:"value_score"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:         p.ID,
		Name:       p.Name,
		Team:       p.Team,
		Position:   string(p.Position),
		ByeWeek:    p.ByeWeek,
		Projection: p.Projection,
		ADP:        p.ADP,
		ValueScore: p.ValueScore,
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	filter := usecase.PlayerFilter{
		Position: strings.TrimSpace(query.Get("position")),
		Team:     strings.TrimSpace(query.Get("team")),
		Search:   strings.TrimSpace(query.Get("search")),
	}

	players, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}
