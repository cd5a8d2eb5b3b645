package torrents

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, runner Runner, searchURL string) *fiber.App {
	t.Helper()

	cfg := testConfig()
	cfg.SearchURL = searchURL
	cfg.SearchAttempts = 1

	feature := NewFeature(cfg, runner, zap.NewNop())
	require.Equal(t, "torrents", feature.Name())
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func request(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandleList(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", mock.Anything, mock.Anything).Return([]byte(listing), nil)
	app := setupApp(t, runner, "")

	status, body := request(t, app, "GET", "/torrents", "")
	require.Equal(t, 200, status)

	var out struct {
		Torrents []Record `json:"torrents"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Torrents, 2)
	assert.Equal(t, "Up & Down", out.Torrents[1].Status)
}

func TestHandleList_CommandFailure(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", mock.Anything, mock.Anything).Return(nil, &CommandError{Err: errors.New("exit status 1")})
	app := setupApp(t, runner, "")

	status, body := request(t, app, "GET", "/torrents", "")
	assert.Equal(t, 500, status)
	assert.JSONEq(t, `{"error":"Download manager error"}`, string(body))
}

func TestHandleDownload(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", "transmission-remote", mock.MatchedBy(func(args []string) bool {
		return len(args) >= 4 && args[len(args)-4] == "-a" && args[len(args)-3] == "magnet:?xt=urn:btih:abc"
	})).Return([]byte("success"), nil)
	app := setupApp(t, runner, "")

	status, body := request(t, app, "POST", "/torrents/download", `{"magnetUri": "magnet:?xt=urn:btih:abc"}`)
	require.Equal(t, 200, status)
	assert.JSONEq(t, `{"message":"Torrent added successfully","output":"success"}`, string(body))
	runner.AssertExpectations(t)
}

func TestHandleDownload_Validation(t *testing.T) {
	runner := new(mockRunner)
	app := setupApp(t, runner, "")

	for _, body := range []string{`{}`, `{"magnetUri": ""}`, `not json`} {
		status, _ := request(t, app, "POST", "/torrents/download", body)
		assert.Equal(t, 400, status, body)
	}
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestHandleSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("site") == "down" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	app := setupApp(t, new(mockRunner), srv.URL)

	status, body := request(t, app, "GET", "/torrents/search?site=1337x&query=ubuntu", "")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"data":[]}`, string(body))

	status, _ = request(t, app, "GET", "/torrents/search?site=1337x", "")
	assert.Equal(t, 400, status)

	status, _ = request(t, app, "GET", "/torrents/search?query=ubuntu", "")
	assert.Equal(t, 400, status)

	status, _ = request(t, app, "GET", "/torrents/search?site=down&query=ubuntu", "")
	assert.Equal(t, 502, status)
}

func TestHandleSearch_Disabled(t *testing.T) {
	app := setupApp(t, new(mockRunner), "")

	status, _ := request(t, app, "GET", "/torrents/search?site=1337x&query=ubuntu", "")
	assert.Equal(t, 503, status)
}
