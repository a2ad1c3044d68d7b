package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/logging"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/transport/feed"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the jigsaw SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the picture menu. Solves are
stored per server, so all users share the same history. With --http, a
spectator feed streams round events over a websocket at /feed, and recent
solves are served as JSON at /solves.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.jigsaw/host_key

Examples:
  jigsaw serve                            # Listen on :23235
  jigsaw serve --ssh :2222                # Listen on port 2222
  jigsaw serve --http :8080               # Also serve the spectator feed
  jigsaw serve --host-key ./my_host_key   # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Spectator feed address (disabled if empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := logging.New(os.Stderr, "jigsaw")
	if flagLog != "" {
		fileLogger, closeLog := openLog("jigsaw")
		//nolint:errcheck // Best-effort close on exit
		defer closeLog()
		logger = fileLogger
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Jigsaw = loadConfig()
	cfg.Store = store
	cfg.Logger = logger.WithPrefix("jigsaw-ssh")

	var httpSrv *feed.Server
	if flagHTTPAddr != "" {
		hub := feed.NewHub(logger.WithPrefix("jigsaw-feed"))
		go hub.Run(ctx)
		cfg.Feed = hub

		var solves feed.SolveLister
		if store != nil {
			solves = store
		}
		httpSrv = feed.NewServer(flagHTTPAddr, hub, solves, logger.WithPrefix("jigsaw-feed"))
		go serveFeed(httpSrv, logger, stop)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting jigsaw SSH server on %s\n", server.Addr())
	if httpSrv != nil {
		fmt.Printf("Spectator feed on %s/feed\n", flagHTTPAddr)
	}
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.Serve(ctx)

	if httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("feed shutdown", "error", err)
		}
		cancel()
	}

	if serveErr != nil {
		fatalf("server: %v", serveErr)
	}
}

// serveFeed runs the HTTP feed; a failure stops the whole server.
func serveFeed(srv *feed.Server, logger *log.Logger, stop context.CancelFunc) {
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("feed server", "error", err)
		stop()
	}
}
