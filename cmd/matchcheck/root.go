package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"digital.vasic.matchers/pkg/engine"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/metrics"
	"digital.vasic.matchers/pkg/report"
	"digital.vasic.matchers/pkg/verify"
)

// errChecksFailed is returned when the run completed but at
// least one check failed.
var errChecksFailed = errors.New("checks failed")

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// loggerFactory creates the logger for a single invocation.
type loggerFactory func(verbose bool) (logging.Logger, error)

type app struct {
	newLogger   loggerFactory
	engine      *engine.DefaultEngine
	verbose     bool
	format      string
	metricsFile string
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{
		newLogger: newLogger,
		engine:    engine.NewEngine(),
	}

	root := &cobra.Command{
		Use:           "matchcheck",
		Short:         "Evaluate values against matcher definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch a.format {
			case formatMarkdown, formatJSON:
				return nil
			}
			return fmt.Errorf("unsupported format %q", a.format)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.format, "format", formatMarkdown, "Report format: markdown or json")
	flags.StringVar(&a.metricsFile, "metrics-textfile", "", "Write Prometheus metrics to this file")

	root.AddCommand(a.newRunCmd(), a.newCheckCmd())
	return root
}

func (a *app) newRunCmd() *cobra.Command {
	var (
		file   string
		values []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the checks of a suite file",
		Long: `Loads a JSON or YAML suite and evaluates each check against the
value named by its target. Values are given as key=value and are
decoded as YAML scalars or lists, so 200 is a number and [a, b] a list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := engine.LoadSuite(file)
			if err != nil {
				return err
			}

			named, err := parseValues(values)
			if err != nil {
				return err
			}

			checks, err := a.engine.Checks(suite, named)
			if err != nil {
				return err
			}
			return a.verify(cmd, checks)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Suite file (.json, .yaml or .yml)")
	cmd.Flags().StringArrayVar(&values, "value", nil, "Target value as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check VALUE DEFINITION...",
		Short: "Check one value against compact definitions",
		Long: `Evaluates VALUE against one or more compact definitions of the
form type:value, for example contains:hello or min_length:5. Several
definitions must all pass.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := make([]engine.Definition, 0, len(args)-1)
			for _, arg := range args[1:] {
				defs = append(defs, engine.ParseDefinition(arg))
			}

			def := defs[0]
			if len(defs) > 1 {
				def = engine.Definition{Type: engine.TypeAllOf, Matchers: defs}
			}

			m, err := a.engine.Build(def)
			if err != nil {
				return err
			}

			name := strings.Join(args[1:], " ")
			return a.verify(cmd, []verify.Check{
				verify.That(name, decodeValue(args[0]), m),
			})
		},
	}
}

func (a *app) verify(cmd *cobra.Command, checks []verify.Check) error {
	logger, err := a.newLogger(a.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheusMetrics(registry)
	if err != nil {
		return err
	}

	rep, err := verify.New(
		verify.WithLogger(logger),
		verify.WithMetrics(recorder),
	).Run(cmd.Context(), checks...)
	if err != nil {
		return err
	}

	if err := a.reporter().Write(cmd.OutOrStdout(), rep); err != nil {
		return err
	}

	if a.metricsFile != "" {
		if err := prometheus.WriteToTextfile(a.metricsFile, registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if rep.Failed > 0 {
		return fmt.Errorf("%d of %d %w", rep.Failed, rep.Total, errChecksFailed)
	}
	return nil
}

func (a *app) reporter() report.Reporter {
	if a.format == formatJSON {
		return report.NewJSONReporter(true)
	}
	return report.NewMarkdownReporter("")
}

// parseValues turns key=value pairs into named target values.
func parseValues(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid value %q: expected key=value", pair)
		}
		values[key] = decodeValue(raw)
	}
	return values, nil
}

// decodeValue reads raw as a YAML scalar or sequence. Anything
// else, including mappings and malformed input, is kept as the
// raw string.
func decodeValue(raw string) any {
	var decoded any
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		return raw
	}

	switch decoded.(type) {
	case nil:
		return raw
	case map[string]any:
		return raw
	}
	return decoded
}
