package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
	"github.com/riskibarqy/liga-amateur/internal/usecase"
)

// GetMatchReport looks a report up by ?home=&away=, or by the legacy
// hyphenated ?id= when both team names are absent.
func (h *Handler) GetMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchReport")
	defer span.End()

	query := r.URL.Query()
	home := strings.TrimSpace(query.Get("home"))
	away := strings.TrimSpace(query.Get("away"))
	legacyID := strings.TrimSpace(query.Get("id"))

	var (
		report matchreport.MatchReport
		err    error
	)
	switch {
	case home != "" || away != "":
		report, err = h.leagueStats.MatchReport(ctx, matchreport.ReportKey{Home: home, Away: away})
	case legacyID != "":
		report, err = h.leagueStats.MatchReportByID(ctx, legacyID)
	default:
		err = fmt.Errorf("%w: home and away, or id, are required", usecase.ErrInvalidInput)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "get match report failed", "home", home, "away", away, "id", legacyID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchReportDTO(report))
}
