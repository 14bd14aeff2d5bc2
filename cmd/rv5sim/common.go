package main

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"

	"github.com/archlab/rv5sim/loader"
	"github.com/archlab/rv5sim/timing/core"
	"github.com/archlab/rv5sim/timing/pipeline"
	"github.com/archlab/rv5sim/timing/simconfig"
)

// logger is the CLI's structured diagnostic logger. Cycle-by-cycle and
// final-statistics output goes through trace.Logger instead; this one is
// for operational messages about the run itself (config problems, program
// load summary, exception reports), following the level of ambient logging
// the teacher applies at its CLI boundary (cmd/m2sim/main.go's log.Printf
// calls), generalized to structured key/value fields via the standard
// library's slog rather than unstructured Printf text.
var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// loadConfig returns the configuration named by --config, or the built-in
// default when no path is given.
func loadConfig() (*simconfig.Config, error) {
	if configPath == "" {
		logger.Debug("using built-in default configuration")
		return simconfig.DefaultConfig(), nil
	}
	cfg, err := simconfig.LoadConfig(configPath)
	if err != nil {
		logger.Error("failed to load configuration", "path", configPath, "err", err)
		return nil, err
	}
	logger.Debug("loaded configuration", "path", configPath)
	return cfg, nil
}

// loadProgramImage reads path either as an ELF binary or, when --raw is set,
// as a flat file of little-endian 32-bit instruction words.
func loadProgramImage(path string) (*loader.Program, error) {
	if !rawImage {
		return loader.Load(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading raw image %s: %w", path, err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("raw image %s: length %d is not a multiple of 4", path, len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return loader.LoadRawImage(entryFlag, words), nil
}

// buildCore loads cfg and the program at path, applies the program into a
// freshly constructed Core, and returns it ready to run.
func buildCore(path string, opts ...pipeline.Option) (*core.Core, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	prog, err := loadProgramImage(path)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	entry := prog.EntryPoint
	if rawImage && entryFlag != 0 {
		entry = entryFlag
	}

	logger.Info("program loaded", "path", path, "raw", rawImage, "entry_pc", entry, "segments", len(prog.Segments))

	c := core.NewCore(cfg, entry, opts...)
	if err := prog.ApplyTo(c.Memory()); err != nil {
		return nil, fmt.Errorf("applying program image: %w", err)
	}
	return c, nil
}
