package httpapi

import (
	"net/http"

	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

func (h *Handler) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchResult")
	defer span.End()

	jornada, err := pathInt(r, "jornada")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	index, err := pathInt(r, "index")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	match, err := h.matchdayAdmin.UpdateMatchResult(ctx, usecase.UpdateMatchResultInput{
		Jornada:   jornada,
		Index:     index,
		HomeGoals: *req.HomeGoals,
		AwayGoals: *req.AwayGoals,
		Status:    req.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match result failed", "jornada", jornada, "index", index, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchDTO(match))
}

func (h *Handler) RescheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RescheduleMatch")
	defer span.End()

	jornada, err := pathInt(r, "jornada")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	index, err := pathInt(r, "index")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req rescheduleMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	match, err := h.matchdayAdmin.RescheduleMatch(ctx, usecase.RescheduleMatchInput{
		Jornada: jornada,
		Index:   index,
		Date:    req.Date,
		Time:    req.Time,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "reschedule match failed", "jornada", jornada, "index", index, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchDTO(match))
}

func (h *Handler) SaveMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatchReport")
	defer span.End()

	var req saveMatchReportRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.reportAdmin.SaveReport(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "save match report failed", "home", req.Home, "away", req.Away, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchReportDTO(report))
}
