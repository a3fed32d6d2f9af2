package main

import (
	"os"

	"viewd/internal/browse"
	"viewd/internal/catalog"
	"viewd/internal/config"
	"viewd/internal/display"
	"viewd/internal/errors"
	"viewd/internal/log"
	"viewd/internal/raster"
	"viewd/internal/scale"
	"viewd/internal/scan"

	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	cfg           *config.Config
	helpRequested bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		rows     int
		cols     int
		backend  string
		patterns []string
		debug    bool
	)

	rootCmd := &cobra.Command{
		Use:     "viewd [directory]",
		Short:   "Browse every image under a directory tree",
		Version: version,
		Long: `Viewd walks a directory tree depth-first and shows every image it
finds, one at a time, scaled to fit the viewport.

Keys: n or space for the next image, p for the previous one, q to quit.
Files that are not decodable images are skipped and dropped from the
run's catalog.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.Warnf("could not load config: %v, using defaults", err)
				cfg = config.New()
			}

			// Flags override the config file.
			if cmd.Flags().Changed("rows") {
				cfg.Viewport.Rows = rows
			}
			if cmd.Flags().Changed("cols") {
				cfg.Viewport.Cols = cols
			}
			if cmd.Flags().Changed("backend") {
				cfg.Display.Backend = backend
			}
			if len(patterns) > 0 {
				cfg.Scan.Patterns = patterns
			}
			if debug {
				cfg.Log.Debug = true
			}
			log.SetDebug(cfg.Log.Debug)

			// With no explicit dimensions, the terminal backend sizes
			// the viewport from the screen it is about to draw on.
			if cfg.Display.Backend == config.BackendTerminal &&
				!cmd.Flags().Changed("rows") && !cmd.Flags().Changed("cols") {
				if vp, ok := display.TerminalViewport(); ok {
					cfg.Viewport = vp
				}
			}

			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runBrowse(args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/viewd/config.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&patterns, "pattern", nil, "only consider files whose name matches a glob (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().IntVar(&rows, "rows", 0, "max viewport rows (default from config or environment)")
	rootCmd.Flags().IntVar(&cols, "cols", 0, "max viewport columns (default from config or environment)")
	rootCmd.Flags().StringVar(&backend, "backend", "", "display backend: window or terminal")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpRequested = true
		_ = cmd.Usage()
	})

	rootCmd.AddCommand(NewScanCmd())

	return rootCmd
}

func runBrowse(root string) error {
	files, err := scan.Enumerate(root)
	if err != nil {
		return err
	}
	files, err = scan.FilterGlob(files, cfg.Scan.Patterns)
	if err != nil {
		return err
	}

	cat := catalog.New(files)
	if cat.Len() == 0 {
		return errors.ErrEmptyCatalog
	}
	log.Debugf("catalog built with %d entries under %s", cat.Len(), root)

	surface, err := display.New(cfg)
	if err != nil {
		return err
	}

	var opts []browse.Option
	if cfg.Display.Backend == config.BackendTerminal {
		// The alternate screen owns stdout; keep stderr quiet too
		// unless logs were routed to a file.
		if cfg.Log.File != "" {
			f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return errors.Wrapf(err, "cannot open log file %s", cfg.Log.File)
			}
			defer f.Close()
			log.SetOutput(f)
		} else {
			log.Silence()
		}
	} else {
		opts = append(opts, browse.WithTrace(os.Stdout))
	}

	pruner := catalog.NewPruner(cat, raster.Decoder{})
	scaler := scale.New(cfg.Viewport, scale.LogSink{})
	browser := browse.New(cat, pruner, scaler, surface, opts...)

	// The surface's event loop needs the calling goroutine, so the
	// browsing loop runs beside it and closes it when done.
	errCh := make(chan error, 1)
	go func() {
		errCh <- browser.Run()
		_ = surface.Close()
	}()

	if err := surface.Main(); err != nil {
		return errors.Wrap(err, "display failed")
	}
	return <-errCh
}
