package observability

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/liga-amateur/internal/config"
	"github.com/riskibarqy/liga-amateur/internal/platform/logging"
)

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	require.NoError(t, err)
	require.Nil(t, srv)
	require.NoError(t, StopPprofServer(srv, logging.NewNop(), time.Second))
}

func TestStartPprofServer_ServesIndex(t *testing.T) {
	logger := logging.NewNop()
	srv, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logger)
	require.NoError(t, err)
	require.NotNil(t, srv)
	t.Cleanup(func() {
		_ = StopPprofServer(srv, logger, time.Second)
	})

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + srv.Addr + "/debug/pprof/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStartPprofServer_BindError(t *testing.T) {
	_, err := StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:-1"}, logging.NewNop())
	require.Error(t, err)
}
