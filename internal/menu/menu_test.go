package menu

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aktus/pipeline-cli/internal/session"
)

func testMenu(t *testing.T, input, baseURL string) (*Menu, *bytes.Buffer, *session.Store) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), session.DefaultFileName))
	var out bytes.Buffer
	m := New(strings.NewReader(input), &out, store, baseURL)
	return m, &out, store
}

func TestRun_ExitImmediately(t *testing.T) {
	m, out, _ := testMenu(t, "0\n", "")

	err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "AKTUS DATA PIPELINE")
	assert.Contains(t, out.String(), "MAIN MENU")
	assert.Contains(t, out.String(), "⚠ Not Logged In")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRun_EndOfInputStopsLoop(t *testing.T) {
	m, _, _ := testMenu(t, "", "")
	assert.NoError(t, m.Run(context.Background()))
}

func TestRun_StatusLineWithActiveSession(t *testing.T) {
	m, out, store := testMenu(t, "0\n", "")
	require.NoError(t, store.Save(&session.Session{Token: "tok", BaseURL: "https://x"}))

	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, out.String(), "✓ Session Active")
}

func TestRun_LoginScreen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"token": "menu-token"}`))
	}))
	defer server.Close()

	// choose Login, enter key, Enter past the pause, then exit
	m, out, store := testMenu(t, "1\nsecret-key\n\n0\n", server.URL)
	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "LOGIN")
	assert.Contains(t, out.String(), "Swagger API Equivalent")
	assert.Contains(t, out.String(), "Authentication successful")

	sess := store.Load()
	require.NotNil(t, sess)
	assert.Equal(t, "menu-token", sess.Token)
	assert.Equal(t, server.URL, sess.BaseURL)
}

func TestRun_LoginFailureShowsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid API key"}`))
	}))
	defer server.Close()

	m, out, store := testMenu(t, "1\nbad-key\n\n0\n", server.URL)
	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "Invalid API key")
	assert.Nil(t, store.Load())
}

func TestRun_LogoutScreen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	}))
	defer server.Close()

	m, out, store := testMenu(t, "5\n\n0\n", server.URL)
	require.NoError(t, store.Save(&session.Session{Token: "tok", BaseURL: server.URL}))

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "Session terminated")
	assert.Nil(t, store.Load())
}

func TestRun_LogoutClearsSessionEvenWhenServerUnreachable(t *testing.T) {
	m, out, store := testMenu(t, "5\n\n0\n", "http://127.0.0.1:1")
	require.NoError(t, store.Save(&session.Session{Token: "tok", BaseURL: "http://127.0.0.1:1"}))

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "Warning:")
	assert.Contains(t, out.String(), "Session terminated")
	assert.Nil(t, store.Load())
}

func TestRun_ListScreen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"documents": [{"id": "550e8400-e29b-41d4-a716-446655440000", "filename": "a.pdf", "status": "processed"}], "count": 1}`))
	}))
	defer server.Close()

	m, out, store := testMenu(t, "3\n25\n\n0\n", server.URL)
	require.NoError(t, store.Save(&session.Session{Token: "tok", BaseURL: server.URL}))

	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "Retrieved 1 document(s)")
	assert.Contains(t, out.String(), "a.pdf")
}

func TestRun_PortfoliosScreenPromptsLoginFirst(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token": "fresh"}`))
	})
	mux.HandleFunc("/api/v1/documents/by-filename/report.pdf/portfolios", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"portfolios": [{"id": "550e8400-e29b-41d4-a716-446655440000", "name": "Filings"}], "count": 1}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	// choose Portfolios, supply key at the login prompt, then filename
	m, out, _ := testMenu(t, "4\nsecret\nreport.pdf\n\n0\n", server.URL)
	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "Not logged in. Please provide API key.")
	assert.Contains(t, out.String(), "Found 1 portfolio(s): report.pdf")
	assert.Contains(t, out.String(), "Filings")
}

func TestRun_SettingsChangeAndReset(t *testing.T) {
	// change URL, then reset, then exit
	m, out, _ := testMenu(t, "7\n1\nhttps://staging.aktus.ai/\n\n7\n2\n\n0\n", "")
	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "✓ Updated to: https://staging.aktus.ai")
	assert.Contains(t, out.String(), "✓ Reset to: https://pat.aktus.ai")
}
