package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/vonadraft/draft-assistant/internal/domain/draft"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
	"github.com/vonadraft/draft-assistant/internal/usecase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: draft name is required", usecase.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "invalid config",
			err:        fmt.Errorf("%w: num_teams must be >= 1", draft.ErrInvalidConfig),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: player abc", usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "unknown session",
			err:        draft.ErrUnknownSession,
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "unauthorized",
			err:        usecase.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantReason: "unauthorized",
		},
		{
			name:       "dependency unavailable",
			err:        usecase.ErrDependencyUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantReason: "dependencyUnavailable",
		},
		{
			name:       "slot taken",
			err:        fmt.Errorf("%w: pick 7", draft.ErrSlotTaken),
			wantStatus: http.StatusConflict,
			wantReason: "draftConflict",
		},
		{
			name:       "player drafted",
			err:        draft.ErrPlayerDrafted,
			wantStatus: http.StatusConflict,
			wantReason: "draftConflict",
		},
		{
			name:       "session closed",
			err:        draft.ErrSessionClosed,
			wantStatus: http.StatusConflict,
			wantReason: "draftConflict",
		},
		{
			name:       "draft complete",
			err:        draft.ErrDraftComplete,
			wantStatus: http.StatusConflict,
			wantReason: "draftConflict",
		},
		{
			name:       "unknown player",
			err:        fmt.Errorf("%w: nobody", draft.ErrUnknownPlayer),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidDraftRequest",
		},
		{
			name:       "no picks to undo",
			err:        draft.ErrNoPicks,
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidDraftRequest",
		},
		{
			name:       "empty position pool",
			err:        fmt.Errorf("%w: TE", valuation.ErrEmptyPool),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidDraftRequest",
		},
		{
			name:       "unclassified",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "internalError",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(t.Context(), tc.err)
			if mapped.HTTPStatus != tc.wantStatus {
				t.Fatalf("unexpected status: got=%d want=%d", mapped.HTTPStatus, tc.wantStatus)
			}
			if mapped.Reason != tc.wantReason {
				t.Fatalf("unexpected reason: got=%q want=%q", mapped.Reason, tc.wantReason)
			}
		})
	}
}
