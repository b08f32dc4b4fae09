package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const indexHTML = "<!doctype html><title>lab</title>"

func writeTree(t *testing.T, withIndex bool) string {
	t.Helper()
	root := t.TempDir()
	if withIndex {
		require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(indexHTML), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "js", "app.js"), []byte("console.log(1)"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "plans.json"), []byte(`{"plans":[]}`), 0o644))
	return root
}

func setupTestApp(t *testing.T, root string) *fiber.App {
	t.Helper()
	app := fiber.New()
	f := NewFeature(root, zap.NewNop())
	require.True(t, f.IsEnabled())
	require.NoError(t, f.Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, string, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get(fiber.HeaderContentType), string(body)
}

func TestFeature_ServesFiles(t *testing.T) {
	app := setupTestApp(t, writeTree(t, true))

	t.Run("Root serves index", func(t *testing.T) {
		status, ctype, body := get(t, app, "/")
		assert.Equal(t, 200, status)
		assert.Contains(t, ctype, "text/html")
		assert.Equal(t, indexHTML, body)
	})

	t.Run("Exact bytes", func(t *testing.T) {
		status, ctype, body := get(t, app, "/js/app.js")
		assert.Equal(t, 200, status)
		assert.Contains(t, ctype, "javascript")
		assert.Equal(t, "console.log(1)", body)
	})

	t.Run("Content type by extension", func(t *testing.T) {
		status, ctype, body := get(t, app, "/data/plans.json")
		assert.Equal(t, 200, status)
		assert.Contains(t, ctype, "application/json")
		assert.Equal(t, `{"plans":[]}`, body)
	})

	t.Run("Missing file", func(t *testing.T) {
		status, _, _ := get(t, app, "/nope.html")
		assert.Equal(t, 404, status)
	})

	t.Run("Missing directory", func(t *testing.T) {
		status, _, _ := get(t, app, "/nope/deeper/file.css")
		assert.Equal(t, 404, status)
	})

	t.Run("Head", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("HEAD", "/js/app.js", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

func TestFeature_DirectoryListing(t *testing.T) {
	app := setupTestApp(t, writeTree(t, false))

	status, ctype, body := get(t, app, "/data/")
	assert.Equal(t, 200, status)
	assert.Contains(t, ctype, "text/html")
	assert.Contains(t, body, "plans.json")
}

func TestFeature_Load(t *testing.T) {
	t.Run("Disabled without root", func(t *testing.T) {
		assert.False(t, NewFeature("", zap.NewNop()).IsEnabled())
	})

	t.Run("Missing root", func(t *testing.T) {
		f := NewFeature(filepath.Join(t.TempDir(), "gone"), zap.NewNop())
		assert.Error(t, f.Load(fiber.New()))
	})

	t.Run("Root is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(file, []byte(indexHTML), 0o644))
		f := NewFeature(file, zap.NewNop())
		assert.Error(t, f.Load(fiber.New()))
	})
}
