package serve

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/spf13/cobra"

	"github.com/mpihlak/goracer/log"
	"github.com/mpihlak/goracer/pkg/config"
	"github.com/mpihlak/goracer/pkg/race"
	"github.com/mpihlak/goracer/pkg/spectate"
)

type Options struct {
	Addr      string
	WebDir    string
	BuildWASM bool
}

func NewServeCmd() *cobra.Command {
	opts := Options{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serves the browser build and the spectator stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.RaceSettings()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Run(ctx, s, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.WebDir, "web-dir", "web",
		"directory with index.html, wasm_exec.js and racer.wasm")
	cmd.Flags().BoolVar(&opts.BuildWASM, "build-wasm", false,
		"build the WASM game into the web dir before serving")

	return cmd
}

// NewRouter serves the web dir with the headers the WASM build needs and
// the spectator stream on /ws.
func NewRouter(webDir string, s race.Settings) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/ws", spectate.NewHandler(s))
	r.Handle("/*", wasmHeaders(http.FileServer(http.Dir(webDir))))
	return r
}

func wasmHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Embedder-Policy", "require-corp")
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")

		// Handle WASM files with correct MIME type
		if filepath.Ext(r.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		next.ServeHTTP(w, r)
	})
}

// Run serves until ctx is done.
func Run(ctx context.Context, s race.Settings, opts Options) error {
	if opts.BuildWASM {
		if err := prepareWebDir(ctx, opts.WebDir); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           NewRouter(opts.WebDir, s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server started",
			log.String("addr", opts.Addr),
			log.String("webDir", opts.WebDir))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
