// Package main provides the CLI entry point for benchsheet.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/config"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/logging"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/output"
)

// cli holds flag values shared by the subcommands.
type cli struct {
	configPath string
	input      string
	output     string
	sheet      string
	saveAs     string
	logLevel   string
	dryRun     bool
	strict     bool
	jsonOut    bool
	pretty     bool
	fromRow    int

	cfg    *config.Config
	logger *logrus.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "benchsheet",
		Short: "Append load-test results to an Excel workbook",
		Long: `benchsheet reads a JSON array of load-test results and appends one
row per result to a worksheet of an existing xlsx workbook.

Without a subcommand it runs "append" with the configured paths.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE:              c.runAppend,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML config file")
	pf.StringVarP(&c.output, "output", "o", "", "Workbook path (default "+benchsheet.DefaultOutputPath+")")
	pf.StringVar(&c.sheet, "sheet", "", "Worksheet name (default "+benchsheet.DefaultSheetName+")")
	pf.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(c.newAppendCmd(), c.newInitCmd(), c.newInspectCmd())
	c.bindAppendFlags(root)

	return root
}

func (c *cli) newAppendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "append",
		Short: "Append results from the JSON input to the worksheet",
		Args:  cobra.NoArgs,
		RunE:  c.runAppend,
	}
	c.bindAppendFlags(cmd)
	return cmd
}

func (c *cli) bindAppendFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&c.input, "input", "i", "", "JSON results file (default "+benchsheet.DefaultInputPath+")")
	flags.StringVar(&c.saveAs, "save-as", "", "Write the workbook to this path instead of overwriting --output")
	flags.BoolVar(&c.dryRun, "dry-run", false, "Map rows without saving the workbook")
	flags.BoolVar(&c.strict, "strict", false, "Do not save and exit non-zero if any result fails")
	flags.BoolVar(&c.jsonOut, "json", false, "Print the batch report as JSON")
	flags.BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
}

func (c *cli) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the workbook or worksheet with a header row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := benchsheet.Init(c.cfg.Output, c.cfg.Sheet); err != nil {
				return fmt.Errorf("init failed: %w", err)
			}
			c.logger.WithFields(logrus.Fields{
				"output": c.cfg.Output,
				"sheet":  c.cfg.Sheet,
			}).Info("worksheet initialised")
			return nil
		},
	}
}

func (c *cli) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the worksheet rows as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := benchsheet.Inspect(c.cfg.Output, c.cfg.Sheet, c.fromRow)
			if err != nil {
				return fmt.Errorf("inspect failed: %w", err)
			}
			data, err := output.SheetToJSON(view, c.pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(c.stdout, string(data))
			return nil
		},
	}
	cmd.Flags().IntVar(&c.fromRow, "from", 1, "First row to print (1-based)")
	cmd.Flags().BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

// setup resolves configuration and builds the logger.
// Flags set on the command line override file and environment values.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = c.input
	}
	if flags.Changed("output") {
		cfg.Output = c.output
	}
	if flags.Changed("sheet") {
		cfg.Sheet = c.sheet
	}
	if flags.Changed("save-as") {
		cfg.SaveAs = c.saveAs
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if flags.Changed("strict") {
		cfg.Strict = c.strict
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	c.cfg = cfg
	c.logger = logging.NewLogger(c.stderr, level)
	return nil
}

func (c *cli) runAppend(cmd *cobra.Command, _ []string) error {
	opts := c.cfg.Options()
	opts.DryRun = c.dryRun

	report, err := benchsheet.Append(opts, c.logger)
	if report != nil && c.jsonOut {
		data, jerr := output.ReportToJSON(report, c.pretty)
		if jerr != nil {
			return fmt.Errorf("serialization failed: %w", jerr)
		}
		fmt.Fprintln(c.stdout, string(data))
	}
	if err != nil {
		return fmt.Errorf("append failed: %w", err)
	}

	return nil
}
