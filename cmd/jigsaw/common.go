package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/logging"
	"github.com/vovakirdan/tui-jigsaw/internal/pictures"
	"github.com/vovakirdan/tui-jigsaw/internal/registry"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

func loadConfig() config.JigsawConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	return cfg
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLog opens the --log file. The close func is never nil.
func openLog(prefix string) (*log.Logger, func() error) {
	logger, closeFn, err := logging.OpenFile(flagLog, prefix)
	if err != nil {
		fatalf("%v", err)
	}
	return logger, closeFn
}

// openStore opens the solve history. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		logger.Warn("solves database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// resolvePicture accepts a registered ID or a path to a picture file.
func resolvePicture(arg string) (registry.Picture, error) {
	if isPictureFile(arg) {
		id, err := pictures.RegisterFile(arg)
		if err != nil {
			return nil, err
		}
		arg = id
	}
	if !registry.Exists(arg) {
		return nil, fmt.Errorf("unknown picture %q\nRun 'jigsaw list' to see available pictures", arg)
	}
	return registry.Create(arg)
}

func isPictureFile(arg string) bool {
	ext := strings.ToLower(filepath.Ext(arg))
	if ext != ".yaml" && ext != ".yml" {
		return false
	}
	_, err := os.Stat(arg)
	return err == nil
}
