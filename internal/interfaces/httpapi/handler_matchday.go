package httpapi

import (
	"net/http"
)

func (h *Handler) ListMatchdays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchdays")
	defer span.End()

	views, err := h.leagueStats.Matchdays(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matchdays failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchdayDTO, 0, len(views))
	for _, view := range views {
		items = append(items, toMatchdayDTO(view))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFeaturedMatchdays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFeaturedMatchdays")
	defer span.End()

	featured, err := h.leagueStats.Featured(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get featured matchdays failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, featuredMatchdaysDTO{
		Featured:   toMatchdayDTOPtr(featured.Featured),
		Live:       featured.Live,
		LastPlayed: toMatchdayDTOPtr(featured.LastPlayed),
		Next:       toMatchdayDTOPtr(featured.Next),
	})
}

func (h *Handler) GetMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchday")
	defer span.End()

	jornada, err := pathInt(r, "jornada")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.leagueStats.Matchday(ctx, jornada)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchday failed", "jornada", jornada, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchdayDTO(view))
}
