package cmd

import (
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"envserve/core/assets"
	"envserve/core/config"
	"envserve/core/middleware/rayid"
	"envserve/core/server"
	"envserve/feature/responder"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/index.html", []byte("<html><head></head></html>"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "/main.js", []byte("main()"), 0o644))

	cfg := &config.Config{Server: server.Config{Index: "index.html", Browse: true}}
	values := responder.Values{APIKey: "k", ProjectID: "p", AppID: "a"}
	logg := zap.NewNop()

	app, err := newApp(logg, loaderFor(cfg, assets.NewLocal(mem, "/"), values, logg))
	require.NoError(t, err)

	t.Run("RootDocument", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "<html><head>"+responder.BuildScript(values)+"</head></html>", string(body))
		assert.Equal(t, strconv.Itoa(len(body)), resp.Header.Get("Content-Length"))
		assert.NotEmpty(t, resp.Header.Get(rayid.Header))
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("StaticFile", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/main.js", nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "main()", string(body))
		assert.NotEmpty(t, resp.Header.Get(rayid.Header))
		assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/nope.png", nil))
		require.NoError(t, err)

		assert.Equal(t, 404, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(rayid.Header))
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Headers"))
	})
}
