package postgres

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/liga-amateur/internal/domain/matchreport"
)

func TestMatchReportRowDecoding(t *testing.T) {
	home := matchreport.Participation{
		Team:      "Atlético Barrio",
		Formation: "4-4-2",
		Players: []matchreport.Player{
			{ID: "9", Name: "Xavi", IsStarting: true, Goals: 2, YellowCards: 1},
		},
	}
	raw, err := sonic.Marshal(sideToDocument(home))
	require.NoError(t, err)

	report, err := matchReportFromRow(matchReportTableModel{
		HomeTeam:     "Atlético Barrio",
		AwayTeam:     "Deportivo Sur",
		Observations: "sin incidencias",
		HomeSide:     raw,
	})
	require.NoError(t, err)

	assert.Equal(t, matchreport.ReportKey{Home: "Atlético Barrio", Away: "Deportivo Sur"}, report.Key)
	assert.Equal(t, home, report.Home)
	assert.Equal(t, "Deportivo Sur", report.Away.Team, "empty side falls back to the key team")
	assert.Empty(t, report.Away.Players)
}

func TestMatchReportRowDecodingRejectsGarbage(t *testing.T) {
	_, err := matchReportFromRow(matchReportTableModel{
		HomeTeam: "A",
		AwayTeam: "B",
		HomeSide: []byte("{not json"),
	})
	require.Error(t, err)
}
