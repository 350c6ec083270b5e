// Package main provides the CLI entrypoint for preset-generator.
//
// preset-generator composes controller mapping presets from reusable
// fragments:
//   - generate writes the preset document of a variant as JSON or YAML
//   - variants lists the registered variants
//   - inspect dumps every mapping composed for one control
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"preset-generator/internal/assembly"
	"preset-generator/internal/config"
	"preset-generator/internal/diagnostic"
	"preset-generator/internal/document"
	"preset-generator/internal/preset"
)

var (
	configPath  string
	variantFlag string
	formatFlag  string
	outPath     string
	columnsFlag int
	rowsFlag    int
	channelFlag int
	compactFlag bool
	verboseFlag bool
)

const outputPerm = 0o644

var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

var rootCmd = &cobra.Command{
	Use:           "preset-generator",
	Short:         "Generate controller mapping presets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag {
			logLevel.Set(slog.LevelDebug)
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the preset document of a variant",
	Long: `Generate assembles the selected variant over the controller geometry,
validates the result and writes the preset document.

Validation errors abort without output. Warnings are logged.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the preset variants",
	Args:  cobra.NoArgs,
	RunE:  runVariants,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <source-id>",
	Short: "Dump the mappings composed for one control",
	Long: `Inspect builds the selected variant and dumps every mapping whose
source id matches, e.g. "col1/stop" or "col2/row1/pad".`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug details")

	for _, cmd := range []*cobra.Command{generateCmd, inspectCmd} {
		cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML run configuration")
		cmd.Flags().StringVar(&variantFlag, "variant", "", "Preset variant (overrides config)")
		cmd.Flags().IntVar(&columnsFlag, "columns", 0, "Number of columns (overrides config)")
		cmd.Flags().IntVar(&rowsFlag, "rows", 0, "Number of rows (overrides config)")
		cmd.Flags().IntVar(&channelFlag, "channels", 0, "Number of channel strips (overrides config)")
	}

	generateCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: json or yaml (overrides config)")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	generateCmd.Flags().BoolVar(&compactFlag, "compact", false, "Write JSON without indentation")

	rootCmd.AddCommand(generateCmd, variantsCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, and applies the flags
// the user set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		var err error

		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = variantFlag
	}

	if flags.Changed("format") {
		cfg.Format = formatFlag
	}

	if flags.Changed("columns") {
		cfg.Geometry.Columns = columnsFlag
	}

	if flags.Changed("rows") {
		cfg.Geometry.Rows = rowsFlag
	}

	if flags.Changed("channels") {
		cfg.Geometry.Channels = channelFlag
	}

	if flags.Changed("compact") {
		indent := !compactFlag
		cfg.Indent = &indent
	}

	if err := cfg.Validate(preset.Names()); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func options(cfg *config.Config) preset.Options {
	return preset.Options{
		Geometry: cfg.Geometry,
		Timing: preset.Timing{
			LongPressMs:      cfg.Timing.LongPressMs,
			SinglePressMaxMs: cfg.Timing.SinglePressMaxMs,
		},
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writeDocument(cmd.OutOrStdout(), cfg)
	}

	return writeFile(outPath, cfg)
}

// writeFile replaces path with the generated document. An existing file is
// left alone when generation fails.
func writeFile(path string, cfg *config.Config) error {
	data, err := renderDocument(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, outputPerm); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	logger.Info("preset written", "path", path)

	return nil
}

// writeDocument generates the configured variant and encodes it to w.
func writeDocument(w io.Writer, cfg *config.Config) error {
	data, err := renderDocument(cfg)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}

	return nil
}

// renderDocument generates the configured variant and serializes it. Nothing
// is produced when generation fails.
func renderDocument(cfg *config.Config) ([]byte, error) {
	logger.Debug("generating preset", "variant", cfg.Variant, "geometry", geometryOf(cfg).String())

	doc, diags, err := preset.Generate(cfg.Variant, options(cfg))
	logDiagnostics(diags)

	if err != nil {
		return nil, err
	}

	logger.Debug("preset assembled",
		"parameters", len(doc.Value.Parameters),
		"groups", len(doc.Value.Groups),
		"mappings", len(doc.Value.Mappings),
	)

	return document.Marshal(doc, cfg.OutputFormat(), cfg.IndentOutput())
}

var logLevels = map[diagnostic.Severity]slog.Level{
	diagnostic.SeverityInfo:    slog.LevelInfo,
	diagnostic.SeverityWarning: slog.LevelWarn,
	diagnostic.SeverityError:   slog.LevelError,
}

func logDiagnostics(diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	ctx := context.Background()

	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			logger.Log(ctx, logLevels[d.Severity], d.Message,
				"severity", d.Severity.Label(), "code", d.Code, "table", d.Table, "path", d.Path)
		}
	}

	if diags.HasCode(diagnostic.CodeUnreachableMode) {
		logger.Warn("increase --rows or --columns to give every mode a selector",
			"unreachable", diags.Count(diagnostic.CodeUnreachableMode))
	}
}

func runVariants(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	for _, name := range preset.Names() {
		v, _ := preset.Lookup(name)
		fmt.Fprintf(w, "%-6s %-8s %s\n", v.Name, v.DefaultGeometry, v.Description)
	}

	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	in, err := preset.Build(cfg.Variant, options(cfg))
	if err != nil {
		return err
	}

	id := args[0]
	found := 0
	w := cmd.OutOrStdout()

	for i, m := range in.Mappings {
		if m.SourceID() != id {
			continue
		}

		found++

		fmt.Fprintf(w, "mappings[%d]\n", i)
		spew.Fdump(w, m)
	}

	if found == 0 {
		return fmt.Errorf("no mapping for source %q in %s %s", id, cfg.Variant, geometryOf(cfg))
	}

	logger.Debug("inspected", "source", id, "mappings", found)

	return nil
}

// geometryOf describes the geometry the variant runs with.
func geometryOf(cfg *config.Config) assembly.Geometry {
	v, ok := preset.Lookup(cfg.Variant)
	if !ok {
		return cfg.Geometry
	}

	return v.Resolve(options(cfg)).Geometry
}
