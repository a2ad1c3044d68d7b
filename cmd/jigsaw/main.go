// jigsaw is a drag-and-drop picture puzzle for the terminal.
//
// Usage:
//
//	jigsaw list               - List available pictures
//	jigsaw play [picture]     - Play a picture (random if omitted)
//	jigsaw menu               - Pick pictures interactively
//	jigsaw scores [picture]   - Show the best solves
//	jigsaw serve              - Start the SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible shuffles
//	--db <path>       - Set database path (default: ~/.jigsaw/solves.db)
//	--config <path>   - Use a custom jigsaw.yaml
//	--log <path>      - Write a debug log
//	--picture <path>  - Register a picture file (repeatable)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/pictures"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLog      string
	flagPictures []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jigsaw",
	Short: "Jigsaw - drag picture tiles into place in your terminal",
	Long: `Jigsaw cuts a picture into a 4x4 grid of tiles and shuffles them into
a tray. Drag the tiles with the mouse onto the numbered board slots until
the picture is whole.

Available commands:
  list     - Show all available pictures
  play     - Play a picture directly
  menu     - Interactive picture picker
  scores   - View the best solves
  serve    - Start SSH server for remote play

Examples:
  jigsaw list
  jigsaw play space1
  jigsaw play ./my-picture.yaml
  jigsaw menu
  jigsaw serve --ssh :2222 --http :8080`,
	PersistentPreRun: registerPictures,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jigsaw/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom jigsaw config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to debug log file (disabled if empty)")
	rootCmd.PersistentFlags().StringSliceVar(&flagPictures, "picture", nil, "Picture YAML file to register (repeatable)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// registerPictures adds --picture files to the registry before any command.
func registerPictures(_ *cobra.Command, _ []string) {
	for _, path := range flagPictures {
		if _, err := pictures.RegisterFile(path); err != nil {
			fatalf("%v", err)
		}
	}
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
