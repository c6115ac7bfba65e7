// Package main provides the CLI entrypoint for pinout-generator.
//
// pinout-generator reads the connector pin declarations of one or more
// boards and writes the C++ sources that name and group their pins:
//   - a pin -> display name lookup function
//   - the list of output pins, low side first
//   - per pin type enum definitions for the tuning tool
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"pinout-generator/internal/board"
	"pinout-generator/internal/config"
	"pinout-generator/internal/enums"
	"pinout-generator/internal/gen"
	"pinout-generator/internal/plan"
	"pinout-generator/internal/pintype"
	"pinout-generator/internal/stamp"
)

type options struct {
	boards     []string
	root       string
	enumFile   string
	configFile string
	force      bool
	dump       bool
	verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts   options
		boards string
	)

	fs := flag.NewFlagSet("pinout-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&boards, "board", "", "Comma separated board names (also accepted as arguments)")
	fs.StringVar(&opts.root, "root", "", "Firmware root directory (overrides config)")
	fs.StringVar(&opts.enumFile, "enums", "", "Enum definitions YAML (overrides config)")
	fs.StringVar(&opts.configFile, "config", "", "Configuration YAML")
	fs.BoolVar(&opts.force, "force", false, "Regenerate even when the inputs are unchanged")
	fs.BoolVar(&opts.dump, "dump", false, "Dump the resolved pinout to stdout")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	for _, b := range append(strings.Split(boards, ","), fs.Args()...) {
		if b = strings.TrimSpace(b); b != "" {
			opts.boards = append(opts.boards, b)
		}
	}

	if len(opts.boards) == 0 {
		fmt.Fprintln(stderr, "Usage: pinout-generator -board <name>[,<name>...] [-root <dir>] [-enums <path>] [-config <path>] [-force] [-dump] [-v]")
		fs.PrintDefaults()

		return options{}, errors.New("no board given")
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	diags := cfg.Validate()
	for _, d := range diags.Warnings {
		log.Warn("configuration", "diagnostic", d.String())
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	table, err := cfg.PinTable()
	if err != nil {
		return err
	}

	idx, err := enums.LoadFile(cfg.EnumPath())
	if err != nil {
		return err
	}

	if err := table.Validate(idx); err != nil {
		log.Warn("enum index is incomplete, boards using the class will fail", "err", err)
	}

	g := &generation{
		opts:  opts,
		cfg:   cfg,
		table: table,
		index: idx,
		log:   log,
		dump:  stdout,
	}

	var errs []error

	for _, name := range opts.boards {
		if err := g.board(name); err != nil {
			log.Error("board failed", "board", name, "err", err)
			errs = append(errs, fmt.Errorf("board %s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()

	if opts.configFile != "" {
		var err error

		cfg, err = config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
	}

	if opts.root != "" {
		cfg.FirmwareRoot = opts.root
	}

	if opts.enumFile != "" {
		cfg.EnumFile = opts.enumFile
	}

	return cfg, nil
}

// generation runs the pipeline for one board at a time.
type generation struct {
	opts  options
	cfg   *config.Config
	table *pintype.Table
	index *enums.Index
	log   *slog.Logger
	dump  io.Writer
}

func (g *generation) board(name string) error {
	log := g.log.With("board", name)
	fs := board.NewFileSystem(g.cfg.FirmwareRoot, name, g.cfg.Layout())

	p, err := plan.NewResolver(fs, g.index, plan.ResolutionConfig{
		PinTypes: g.table,
		Logger:   g.log,
	}).Resolve()
	if err != nil {
		return err
	}

	for _, d := range p.Diagnostics.All() {
		log.Debug("resolution", "diagnostic", d.String())
	}

	if g.opts.dump {
		spew.Fdump(g.dump, p)
	}

	if !p.HasSources() {
		log.Info("no declarations, skipping", "dir", fs.ConnectorsDir())
		return nil
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.SourceRoot = g.cfg.FirmwareRoot
	generator := gen.NewGenerator(genCfg)

	st, stampPath, err := g.stamp(fs, genCfg.ToolName, generator.Fingerprint())
	if err != nil {
		return err
	}

	if stampPath != "" && !g.opts.force {
		fresh, err := stamp.UpToDate(stampPath, st, fs.ArtifactPaths()...)
		if err != nil {
			log.Warn("ignoring unreadable stamp", "err", err)
		}

		if fresh {
			log.Info("inputs unchanged, skipping", "stamp", stampPath)
			return nil
		}
	}

	files, err := generator.Generate(p)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, fs); err != nil {
		return err
	}

	log.Info("generated", "files", len(files), "pins", p.Registry.Len())

	if stampPath == "" {
		return nil
	}

	return stamp.Save(stampPath, st)
}

func (g *generation) stamp(fs *board.FileSystem, tool, fingerprint string) (stamp.Stamp, string, error) {
	if g.cfg.StampFile == "" {
		return stamp.Stamp{}, "", nil
	}

	inputs := append(fs.InputFiles(), g.cfg.EnumPath())
	if g.opts.configFile != "" {
		inputs = append(inputs, g.opts.configFile)
	}

	st, err := stamp.New(g.cfg.FirmwareRoot, fs.Name(), tool, fingerprint, inputs)
	if err != nil {
		return stamp.Stamp{}, "", err
	}

	return st, filepath.Join(fs.ConnectorsDir(), g.cfg.StampFile), nil
}
