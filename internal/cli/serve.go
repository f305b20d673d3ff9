package cli

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/pattern"
	"github.com/tessella/tessella/pkg/render"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	port    int
	width   int
	height  int
	seed    int64
	seedSet bool
	poemDir string
}

// newServeCmd creates the serve command, which runs the browser live preview.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pattern live-preview server",
		Long: `Serve starts an HTTP server with an animated browser preview. GET /
returns the viewer page and GET /pattern regenerates the pattern with a
freshly picked wallpaper group, returned as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("width") && cfg.Width > 0 {
				opts.width = cfg.Width
			}
			if !cmd.Flags().Changed("height") && cfg.Height > 0 {
				opts.height = cfg.Height
			}
			if !cmd.Flags().Changed("poem-dir") && cfg.PoemDir != "" {
				opts.poemDir = cfg.PoemDir
			}
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", 8000, "port to listen on")
	cmd.Flags().IntVarP(&opts.width, "width", "W", 80, "pattern width in characters")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 40, "pattern height in characters")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "random seed (default: current time)")
	cmd.Flags().StringVar(&opts.poemDir, "poem-dir", "", "directory of poem_*.txt corpus files")

	return cmd
}

// patternServer serves the animated preview. The pattern instance is not
// concurrency-safe, so every regeneration holds mu.
type patternServer struct {
	mu     sync.Mutex
	p      *pattern.Pattern
	corpus []string
}

func newPatternServer(opts *serveOpts) *patternServer {
	popts := []pattern.Option{}
	if opts.seedSet {
		popts = append(popts, pattern.WithSeed(opts.seed))
	}
	s := &patternServer{
		p:      pattern.New(opts.width, opts.height, popts...),
		corpus: corpusLines(opts.poemDir),
	}
	s.p.Generate(nil, s.corpus)
	return s
}

// handleIndex serves the animated viewer page, seeded with the current
// pattern state.
func (s *patternServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	page := viewerPage(string(s.p.Group()), render.Text(s.p.Rows()))
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// handlePattern regenerates the pattern with a random group and returns it
// as a JSON snapshot.
func (s *patternServer) handlePattern(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.p.RandomGroup()
	s.p.Generate(nil, s.corpus)
	snap := render.NewSnapshot(s.p)
	s.mu.Unlock()

	data, err := render.JSON(snap)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(data)
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	ps := newPatternServer(opts)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", ps.handleIndex)
	r.Get("/pattern", ps.handlePattern)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving patterns at http://localhost:%d", opts.port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
