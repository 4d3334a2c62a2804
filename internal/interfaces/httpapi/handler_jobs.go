package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

func (h *Handler) RunLiveSweepJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLiveSweepJob")
	defer span.End()

	if h.liveSweeper == nil {
		writeError(ctx, w, fmt.Errorf("%w: live sweep is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.liveSweeper.Sweep(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "run live sweep job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	events := result.Events
	if events == nil {
		events = []usecase.MatchEvent{}
	}
	writeSuccess(ctx, w, http.StatusOK, sweepResultDTO{
		Checked:      result.Checked,
		Transitioned: result.Transitioned,
		Events:       events,
	})
}
