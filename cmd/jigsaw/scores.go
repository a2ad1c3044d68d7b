package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/registry"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [picture]",
	Short: "Show the best solves",
	Long: `Display the best solves for a picture (fewest moves, then fastest), or a
summary of every picture when no picture is given.

Examples:
  jigsaw scores
  jigsaw scores space0
  jigsaw scores space0 --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of solves to show")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening solves database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	pictureID := args[0]
	pic, err := registry.Create(pictureID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown picture %q\n", pictureID)
		fmt.Fprintln(os.Stderr, "Run 'jigsaw list' to see available pictures.")
		store.Close()
		os.Exit(1)
	}

	solves, err := store.BestSolves(pictureID, flagScoresLimit)
	if err != nil {
		store.Close()
		fatalf("retrieving solves: %v", err)
	}

	fmt.Printf("Best Solves - %s\n", pic.Title())
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'jigsaw play %s' to set the first record!\n", pictureID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-12s  %s\n", "Rank", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-5d  %-6s  %-12s  %s\n",
			i+1, s.Moves, clock(s.Duration), s.Session, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetPictureStats(pictureID); err == nil && stats.Solves > 0 {
		fmt.Println()
		fmt.Printf("Solved %d times, %.1f moves on average\n", stats.Solves, stats.AvgMoves)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllPictureStats()
	if err != nil {
		store.Close()
		fatalf("retrieving stats: %v", err)
	}

	fmt.Printf("  %-12s  %-6s  %-10s  %-9s  %s\n", "Picture", "Solves", "Best moves", "Best time", "Last solved")
	fmt.Printf("  %-12s  %-6s  %-10s  %-9s  %s\n", "-------", "------", "----------", "---------", "-----------")
	for _, p := range registry.List() {
		stats, ok := all[p.ID]
		if !ok || stats.Solves == 0 {
			fmt.Printf("  %-12s  %-6d  %-10s  %-9s  %s\n", p.ID, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-10d  %-9s  %s\n",
			p.ID, stats.Solves, stats.BestMoves, clock(stats.BestDuration), stats.LastSolved.Format("2006-01-02 15:04"))
	}
}

// clock formats a duration as m:ss.
func clock(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
