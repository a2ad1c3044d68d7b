package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [picture]",
	Short: "Play a picture",
	Long: `Deal a picture into the tray and start playing. Without an argument a
random picture is picked for every round. The argument may be a picture ID
or a path to a picture YAML file.

Controls:
  Mouse drag  - Move a tile onto a board slot or swap two tiles
  R           - Restart (after a solve)
  Ctrl+S      - Save a text screenshot
  Esc/Q       - Quit

Examples:
  jigsaw play
  jigsaw play space2
  jigsaw play ./art/comet.yaml
  jigsaw play --seed 42 --log ~/.jigsaw/jigsaw.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	var pic registry.Picture
	if len(args) == 1 {
		p, err := resolvePicture(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		pic = p
	}

	logger, closeLog := openLog("jigsaw")
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	store := openStore(logger)
	saver, _ := tui.History(store)

	runErr := tui.Run(tui.GameOptions{
		Config:   cfg,
		Runtime:  runtimeConfig(),
		Picture:  pic,
		Recorder: tui.NewRecorder("local", saver, nil, logger),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}
