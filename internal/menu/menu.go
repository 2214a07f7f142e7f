// Package menu implements the interactive terminal menu over the same
// operations the CLI commands expose. Input and output are injected so the
// menu is testable without a TTY.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aktus/pipeline-cli/internal/api"
	"github.com/aktus/pipeline-cli/internal/batch"
	"github.com/aktus/pipeline-cli/internal/render"
	"github.com/aktus/pipeline-cli/internal/session"
)

const (
	bannerWidth  = 60
	defaultLimit = 100
)

// Menu is the interactive menu state: where to read choices from, where to
// write screens to, and which base URL the session targets.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	store   *session.Store
	baseURL string
}

// New creates a Menu bound to the given streams and session store. An
// empty base URL selects the production endpoint.
func New(in io.Reader, out io.Writer, store *session.Store, baseURL string) *Menu {
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Run loops over the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.mainScreen()

		choice, ok := m.prompt("Option")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.loginScreen(ctx)
		case "2":
			m.uploadScreen(ctx)
		case "3":
			m.listScreen(ctx)
		case "4":
			m.portfoliosScreen(ctx)
		case "5":
			m.logoutScreen(ctx)
		case "6":
			m.batchScreen(ctx)
		case "7":
			m.settingsScreen()
		case "0":
			m.printf("\nGoodbye!\n")
			return nil
		}
	}
}

//nolint:errcheck // writing to the terminal; errors are not recoverable
func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// prompt reads one trimmed line; ok is false once input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s: ", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// pause waits for Enter so screen output stays readable.
func (m *Menu) pause() {
	m.printf("\nPress Enter...")
	m.in.Scan()
}

func (m *Menu) header(title string) {
	border := strings.Repeat("=", bannerWidth)
	m.printf("\n%s\n", border)
	m.printf("%s%s\n", strings.Repeat(" ", 15), "AKTUS DATA PIPELINE")
	m.printf("%s\n\n", border)
	if title != "" {
		m.printf("%s\n\n", title)
	}
}

func (m *Menu) mainScreen() {
	m.header("")
	m.printf("%s\n\n", m.sessionStatus())

	m.printf("MAIN MENU\n")
	m.printf("%s\n", strings.Repeat("-", bannerWidth))
	m.printf("1. Login\n")
	m.printf("2. Upload Document\n")
	m.printf("3. List Documents\n")
	m.printf("4. Find Portfolios\n")
	m.printf("5. Logout\n")
	m.printf("\n")
	m.printf("6. Upload Folder (Batch)\n")
	m.printf("7. Settings\n")
	m.printf("0. Exit\n")
	m.printf("%s\n\n", strings.Repeat("-", bannerWidth))
}

// sessionStatus renders the status line, including expiry when the stored
// token is a readable JWT.
func (m *Menu) sessionStatus() string {
	sess := m.store.Load()
	if sess == nil {
		return "⚠ Not Logged In"
	}
	if exp, ok := sess.ExpiresAt(); ok {
		return fmt.Sprintf("✓ Session Active (expires %s)", exp.Local().Format("2006-01-02 15:04"))
	}
	return "✓ Session Active"
}

// showCurl prints the request a screen is about to make in curl form, the
// same way the API's swagger page would describe it.
func (m *Menu) showCurl(endpoint, method, data, file string, authRequired bool) {
	m.printf("\nSwagger API Equivalent:\n")
	m.printf("%s\n", strings.Repeat("-", bannerWidth))

	curl := fmt.Sprintf("curl -X %s '%s%s'", method, m.baseURL, endpoint)
	if method == "POST" && file == "" {
		curl += " \\\n  -H 'Content-Type: application/json'"
	}
	if authRequired {
		curl += " \\\n  -H 'Authorization: Bearer YOUR_TOKEN'"
	}
	if data != "" {
		curl += fmt.Sprintf(" \\\n  -d '%s'", data)
	}
	if file != "" {
		curl += fmt.Sprintf(" \\\n  -F 'file=@%s'", file)
	}

	m.printf("%s\n", curl)
	m.printf("%s\n\n", strings.Repeat("-", bannerWidth))
}

// client builds an API client carrying the stored token, if any.
func (m *Menu) client() *api.Client {
	var token string
	if sess := m.store.Load(); sess != nil {
		token = sess.Token
	}
	return api.New(m.baseURL, token)
}

// login performs the credential exchange and persists the session.
func (m *Menu) login(ctx context.Context, apiKey string) bool {
	client := api.New(m.baseURL, "")
	resp, err := client.Login(ctx, apiKey)
	if err != nil {
		m.printf("Error: %v\n", err)
		return false
	}
	if err := m.store.Save(&session.Session{Token: resp.Token, BaseURL: client.BaseURL()}); err != nil {
		m.printf("Error: %v\n", err)
		return false
	}
	m.printf("Authentication successful\n")
	return true
}

// ensureSession prompts for an API key when no session exists yet.
func (m *Menu) ensureSession(ctx context.Context) bool {
	if m.store.Load() != nil {
		return true
	}
	m.printf("⚠ Not logged in. Please provide API key.\n\n")
	apiKey, ok := m.prompt("API Key")
	if !ok || apiKey == "" {
		return false
	}
	m.printf("\nAuthenticating...\n")
	return m.login(ctx, apiKey)
}

func (m *Menu) loginScreen(ctx context.Context) {
	m.header("LOGIN")
	m.showCurl("/api/v1/auth/login", "POST", `{"api_key": "YOUR_API_KEY"}`, "", false)

	apiKey, ok := m.prompt("API Key")
	if ok && apiKey != "" {
		m.printf("\nAuthenticating...\n")
		m.login(ctx, apiKey)
	}
	m.pause()
}

func (m *Menu) uploadScreen(ctx context.Context) {
	m.header("UPLOAD DOCUMENT")
	m.showCurl("/api/v1/documents", "POST", "", "document.pdf", true)

	if !m.ensureSession(ctx) {
		m.pause()
		return
	}

	filePath, ok := m.prompt("File path")
	if !ok || filePath == "" {
		m.pause()
		return
	}
	provider, _ := m.prompt("Provider (optional)")

	m.printf("\nUploading...\n")
	resp, err := m.client().Upload(ctx, filePath, provider)
	if err != nil {
		m.printf("Error: %v\n", err)
	} else {
		m.printf("Document uploaded: %s\n", filePath)
		_ = render.NewPrinter(m.out, false, false).Payload(resp)
	}
	m.pause()
}

func (m *Menu) listScreen(ctx context.Context) {
	m.header("LIST DOCUMENTS")
	m.showCurl(fmt.Sprintf("/api/v1/documents?limit=%d", defaultLimit), "GET", "", "", true)

	if !m.ensureSession(ctx) {
		m.pause()
		return
	}

	limit := defaultLimit
	if raw, ok := m.prompt(fmt.Sprintf("Limit (default %d)", defaultLimit)); ok && raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	m.printf("\nRetrieving...\n")
	resp, err := m.client().List(ctx, 0, limit)
	if err != nil {
		m.printf("Error: %v\n", err)
	} else {
		m.printf("Retrieved %d document(s)\n", resp.Count)
		_ = render.NewPrinter(m.out, false, false).Payload(resp)
	}
	m.pause()
}

func (m *Menu) portfoliosScreen(ctx context.Context) {
	m.header("FIND PORTFOLIOS")
	m.showCurl("/api/v1/documents/by-filename/{filename}/portfolios", "GET", "", "", true)

	if !m.ensureSession(ctx) {
		m.pause()
		return
	}

	filename, ok := m.prompt("Filename")
	if !ok || filename == "" {
		m.pause()
		return
	}

	m.printf("\nRetrieving...\n")
	resp, err := m.client().Portfolios(ctx, filename)
	if err != nil {
		m.printf("Error: %v\n", err)
	} else {
		m.printf("Found %d portfolio(s): %s\n", resp.Count, filename)
		_ = render.NewPrinter(m.out, false, false).Payload(resp)
	}
	m.pause()
}

func (m *Menu) logoutScreen(ctx context.Context) {
	m.header("LOGOUT")
	m.showCurl("/api/v1/auth/logout", "POST", "", "", true)

	// The local session is cleared even when the server call fails; a
	// stale token on an unreachable server is still a logout.
	if err := m.client().Logout(ctx); err != nil {
		m.printf("Warning: %v\n", err)
	}
	if err := m.store.Clear(); err != nil {
		m.printf("Error: %v\n", err)
	} else {
		m.printf("Session terminated\n")
	}
	m.pause()
}

func (m *Menu) batchScreen(ctx context.Context) {
	m.header("BATCH UPLOAD")
	m.printf("Swagger API Equivalent:\n")
	m.printf("%s\n", strings.Repeat("-", bannerWidth))
	m.printf("For each PDF file:\n")
	m.printf("curl -X POST '%s/api/v1/documents' \\\n", m.baseURL)
	m.printf("  -H 'Authorization: Bearer YOUR_TOKEN' \\\n")
	m.printf("  -F 'file=@filename.pdf'\n")
	m.printf("%s\n\n", strings.Repeat("-", bannerWidth))

	if !m.ensureSession(ctx) {
		m.pause()
		return
	}

	folder, ok := m.prompt("Folder")
	if !ok || folder == "" {
		m.pause()
		return
	}
	provider, _ := m.prompt("Provider (optional)")

	m.printf("\nUploading...\n")
	summary, err := batch.Run(ctx, m.client(), batch.Options{
		Dir:      folder,
		Provider: provider,
		Out:      m.out,
	})
	if err != nil {
		m.printf("Error: %v\n", err)
	} else {
		m.printf("\nComplete: %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}
	m.pause()
}

func (m *Menu) settingsScreen() {
	m.header("SETTINGS")
	m.printf("API URL: %s\n\n", m.baseURL)
	m.printf("1. Change URL\n")
	m.printf("2. Reset to default\n")
	m.printf("0. Back\n\n")

	choice, ok := m.prompt("Option")
	if !ok {
		return
	}

	switch choice {
	case "1":
		m.printf("\n")
		if url, ok := m.prompt("New URL"); ok && url != "" {
			m.baseURL = strings.TrimRight(url, "/")
			m.printf("✓ Updated to: %s\n", m.baseURL)
			m.pause()
		}
	case "2":
		m.baseURL = api.DefaultBaseURL
		m.printf("✓ Reset to: %s\n", m.baseURL)
		m.pause()
	}
}
