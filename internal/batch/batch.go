// Package batch implements best-effort sequential folder upload: every
// file in a directory is attempted once, failures are recorded instead of
// aborting the run, and a summary is always produced.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/aktus/pipeline-cli/internal/api"
)

// DocumentUploader is the single API operation the driver needs. It is
// satisfied by *api.Client and by fakes in tests.
type DocumentUploader interface {
	Upload(ctx context.Context, filePath, provider string) (*api.UploadResponse, error)
}

// Result is the tagged per-file outcome of one upload attempt.
type Result struct {
	Filename   string
	OK         bool
	DocumentID uuid.UUID
	Err        error
}

// Summary accumulates the per-file results of a run.
type Summary struct {
	Results   []Result
	Succeeded int
	Failed    int
}

// Options configures a batch run.
type Options struct {
	// Dir is the folder to upload. Subdirectories are not descended into.
	Dir string
	// Provider is the optional processing profile passed with each upload.
	Provider string
	// Out receives the per-file progress lines; nil discards them.
	Out io.Writer
}

// Run uploads every regular file in the folder, one at a time, in name
// order. Non-PDF files fail the client's preflight check and are counted
// as failures without a network call; a failed upload never stops the
// run. The returned error covers only the inability to read the folder.
func Run(ctx context.Context, uploader DocumentUploader, opts Options) (*Summary, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	entries, err := os.ReadDir(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", opts.Dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	summary := &Summary{}
	for _, name := range names {
		result := Result{Filename: name}

		resp, err := uploader.Upload(ctx, filepath.Join(opts.Dir, name), opts.Provider)
		if err != nil {
			result.Err = err
			summary.Failed++
			_, _ = fmt.Fprintf(out, "✗ %s: %v\n", name, err)
		} else {
			result.OK = true
			result.DocumentID = resp.ID
			summary.Succeeded++
			_, _ = fmt.Fprintf(out, "✓ %s\n", name)
		}

		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}
