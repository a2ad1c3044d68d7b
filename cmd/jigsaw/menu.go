package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick pictures interactively",
	Long: `Opens the picture menu. Pick a picture to play it, press Tab for the
best solves, and Esc in a game to come back.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := openLog("jigsaw")
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	store := openStore(logger)
	saver, solves := tui.History(store)

	runErr := tui.RunSession(tui.SessionOptions{
		Config:   cfg,
		Runtime:  runtimeConfig(),
		Recorder: tui.NewRecorder("local", saver, nil, logger),
		Solves:   solves,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running menu: %v", runErr)
	}
}
