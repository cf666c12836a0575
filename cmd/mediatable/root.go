package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"mediatable/internal/config"
	"mediatable/internal/inventory"
	"mediatable/internal/logging"
	"mediatable/internal/media/mediainfo"
	"mediatable/internal/pipeline"
	"mediatable/internal/preflight"
	"mediatable/internal/render"
	"mediatable/internal/scan"
)

// inventoryFlags holds the raw root command flags. Values only apply when the
// flag was set explicitly; otherwise the config file decides.
type inventoryFlags struct {
	recursive   bool
	depth       int
	videoTracks int
	audioTracks int
	threads     int
	sort        string
	format      string
	mediainfo   string
}

// runSettings is the merged view of config and flags for one invocation.
type runSettings struct {
	root       string
	depth      int
	extensions []string
	columns    render.Columns
	threads    int
	order      inventory.Order
	format     string
	extractor  mediainfo.Client
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var flags inventoryFlags

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "mediatable [DIR]",
		Short: "Print a table of media file container, video, and audio details",
		Long: "mediatable inspects every media file under DIR (default: the current directory)\n" +
			"with mediainfo and prints one aligned row per file.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if ownsConfig(cmd) {
				return nil
			}
			_, err := ctx.loadConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			settings, err := resolveSettings(cmd, cfg, flags, args)
			if err != nil {
				return err
			}
			return runInventory(cmd, ctx, cfg, settings)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	pf.StringVar(&logLevelFlag, "log-level", "", "Log level for stderr output (debug, info, warn, error)")

	f := rootCmd.Flags()
	f.BoolVarP(&flags.recursive, "recursive", "r", false, "Descend into subdirectories (default depth from config, 10)")
	f.IntVarP(&flags.depth, "depth", "d", 1, "Maximum directory depth to scan; files directly in DIR are depth 1")
	f.IntVar(&flags.videoTracks, "video_tracks", 1, "Video track columns to show per file")
	f.IntVar(&flags.audioTracks, "audio_tracks", 1, "Audio track columns to show per file")
	f.IntVarP(&flags.threads, "threads", "t", 1, "Number of files inspected concurrently")
	f.StringVar(&flags.sort, "sort", string(inventory.OrderStructural), "Row order: structural or name")
	f.StringVar(&flags.format, "format", config.FormatPlain, "Output style: plain, box, or json")
	f.StringVar(&flags.mediainfo, "mediainfo", "", "Path to the mediainfo executable")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config, flags inventoryFlags, args []string) (runSettings, error) {
	changed := cmd.Flags().Changed

	settings := runSettings{
		root:       ".",
		depth:      1,
		extensions: cfg.Scan.Extensions,
		columns: render.Columns{
			Video: cfg.Inventory.VideoTracks,
			Audio: cfg.Inventory.AudioTracks,
		},
		threads: cfg.Inventory.Threads,
		format:  cfg.Output.Format,
		extractor: mediainfo.Client{
			Binary:  cfg.MediainfoBinary(),
			Timeout: cfg.MediainfoTimeout(),
		},
	}
	if len(args) > 0 {
		settings.root = args[0]
	}

	switch {
	case changed("depth"):
		if flags.depth < 1 {
			return runSettings{}, errors.New("--depth must be at least 1")
		}
		settings.depth = flags.depth
	case flags.recursive:
		settings.depth = cfg.Scan.RecursiveDepth
	}

	if changed("video_tracks") {
		settings.columns.Video = flags.videoTracks
	}
	if changed("audio_tracks") {
		settings.columns.Audio = flags.audioTracks
	}
	if settings.columns.Video < 0 || settings.columns.Audio < 0 {
		return runSettings{}, errors.New("track column counts must be zero or greater")
	}

	if changed("threads") {
		if flags.threads < 1 {
			return runSettings{}, errors.New("--threads must be at least 1")
		}
		settings.threads = flags.threads
	}

	sortValue := cfg.Inventory.Sort
	if changed("sort") {
		sortValue = flags.sort
	}
	order, err := inventory.ParseOrder(sortValue)
	if err != nil {
		return runSettings{}, fmt.Errorf("--sort: %w", err)
	}
	settings.order = order

	if changed("format") {
		settings.format = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if err := config.ValidateFormat(settings.format); err != nil {
		return runSettings{}, err
	}

	if changed("mediainfo") && strings.TrimSpace(flags.mediainfo) != "" {
		settings.extractor.Binary = strings.TrimSpace(flags.mediainfo)
	}
	return settings, nil
}

func runInventory(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, settings runSettings) error {
	if err := preflight.RequireDirectory(settings.root); err != nil {
		return &exitError{
			code:    exitFatalConfig,
			message: fmt.Sprintf("No such directory: %s", settings.root),
			err:     err,
		}
	}

	logger, err := ctx.newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	runCtx := logging.WithRunID(cmd.Context(), logging.NewRunID())
	runLogger := logging.ForRun(runCtx, logger)

	files, walkErrs := scan.Walk(settings.root, scan.Options{
		MaxDepth:   settings.depth,
		Extensions: settings.extensions,
	})
	for _, walkErr := range walkErrs {
		logging.Warn(runLogger, "directory traversal error", logging.Issue{
			Event:  "scan_failed",
			Err:    walkErr,
			Hint:   "check permissions on the listed path",
			Impact: "files beneath the path are not inventoried",
		})
	}
	runLogger.Info("scan complete",
		slog.String("root", settings.root),
		slog.Int("depth", settings.depth),
		slog.Int("files", len(files)),
	)

	engine := pipeline.New(settings.extractor,
		pipeline.WithWorkers(settings.threads),
		pipeline.WithLogger(logger),
	)
	result := engine.Collect(runCtx, files)
	if err := runCtx.Err(); err != nil {
		return err
	}

	records := result.Records
	inventory.Sort(records, settings.order)
	return writeRecords(cmd, records, settings)
}

func writeRecords(cmd *cobra.Command, records []inventory.MediaRecord, settings runSettings) error {
	out := cmd.OutOrStdout()
	switch settings.format {
	case config.FormatBox:
		return render.WriteBox(out, records, settings.columns, render.BoxOptions{Color: shouldColorize(out)})
	case config.FormatJSON:
		return render.WriteJSON(out, records)
	default:
		return render.Write(out, records, settings.columns)
	}
}
