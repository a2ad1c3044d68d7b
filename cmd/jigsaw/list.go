package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available pictures",
	Long:  `Shows the built-in pictures and any registered with --picture.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	pics := registry.List()

	if len(pics) == 0 {
		fmt.Println("No pictures available.")
		return
	}

	fmt.Println("Available pictures:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range pics {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range pics {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'jigsaw play <id>' to play a picture.")
}
