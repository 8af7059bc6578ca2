package responder

import (
	"testing"

	"envserve/core/assets"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testValues = Values{APIKey: "test-key", ProjectID: "test-project", AppID: "test-app"}

func newTestService(t *testing.T, files map[string]string) (*Service, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0o644))
	}
	return NewService(assets.NewLocal(mem, "/"), "index.html", testValues, zap.NewNop()), mem
}

func TestService_Render(t *testing.T) {
	t.Run("Injected", func(t *testing.T) {
		svc, _ := newTestService(t, map[string]string{
			"/index.html": "<html><head><title>t</title></head><body/></html>",
		})

		got, err := svc.Render()
		require.NoError(t, err)
		want := "<html><head><title>t</title>" + BuildScript(testValues) + "</head><body/></html>"
		assert.Equal(t, want, string(got))
	})

	t.Run("NoMarker", func(t *testing.T) {
		svc, _ := newTestService(t, map[string]string{"/index.html": "<body>plain</body>"})

		got, err := svc.Render()
		require.NoError(t, err)
		assert.Equal(t, "<body>plain</body>", string(got))
	})

	t.Run("ReadEveryTime", func(t *testing.T) {
		svc, mem := newTestService(t, map[string]string{"/index.html": "<head></head>v1"})

		first, err := svc.Render()
		require.NoError(t, err)
		assert.Contains(t, string(first), "v1")

		require.NoError(t, afero.WriteFile(mem, "/index.html", []byte("<head></head>v2"), 0o644))
		second, err := svc.Render()
		require.NoError(t, err)
		assert.Contains(t, string(second), "v2")
	})

	t.Run("Missing", func(t *testing.T) {
		svc, _ := newTestService(t, nil)

		_, err := svc.Render()
		assert.ErrorIs(t, err, ErrDocumentUnavailable)
	})

	t.Run("Directory", func(t *testing.T) {
		svc, mem := newTestService(t, nil)
		require.NoError(t, mem.MkdirAll("/index.html", 0o755))

		_, err := svc.Render()
		assert.ErrorIs(t, err, ErrDocumentUnavailable)
		assert.ErrorIs(t, err, ErrNotAFile)
	})

	t.Run("InvalidEncoding", func(t *testing.T) {
		svc, _ := newTestService(t, map[string]string{"/index.html": "<head>\xff\xfe</head>"})

		_, err := svc.Render()
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}

func TestService_IndexPath(t *testing.T) {
	mem := afero.NewMemMapFs()
	root := assets.NewLocal(mem, "/")

	assert.Equal(t, "/index.html", NewService(root, "index.html", Values{}, zap.NewNop()).IndexPath())
	assert.Equal(t, "/app/main.html", NewService(root, "/app/main.html", Values{}, zap.NewNop()).IndexPath())
}

func TestValues_Missing(t *testing.T) {
	assert.Empty(t, testValues.Missing())
	assert.Equal(t,
		[]string{"VITE_FIREBASE_API_KEY", "VITE_FIREBASE_PROJECT_ID", "VITE_FIREBASE_APP_ID"},
		Values{}.Missing())
	assert.Equal(t, Values{APIKey: "k", ProjectID: "p", AppID: "a"},
		Config{FirebaseAPIKey: "k", FirebaseProjectID: "p", FirebaseAppID: "a"}.Values())
}
