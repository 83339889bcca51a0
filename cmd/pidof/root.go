package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jongio/procfind/logutil"
	"github.com/jongio/procfind/procutil"
	"github.com/jongio/procfind/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	exitFound    = 0
	exitNotFound = 1
	exitFailure  = 2
)

const (
	colorGreen = "\033[32m"
	colorReset = "\033[0m"
)

var errNotFound = errors.New("process not found")

type rootOptions struct {
	ignoreCase     bool
	output         string
	debug          bool
	structuredLogs bool
}

// lookupResult is what -o json and -o yaml print.
type lookupResult struct {
	Name  string `json:"name" yaml:"name"`
	PID   uint32 `json:"pid,omitempty" yaml:"pid,omitempty"`
	Found bool   `json:"found" yaml:"found"`
}

func bindFlags(fs *pflag.FlagSet, o *rootOptions) {
	fs.BoolVarP(&o.ignoreCase, "ignore-case", "i", false, "Compare names using Unicode case folding")
	fs.StringVarP(&o.output, "output", "o", "default", "Output format: default, json or yaml")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging (also "+logutil.EnvDebug+"=true)")
	fs.BoolVar(&o.structuredLogs, "structured-logs", false, "Write logs as JSON")
}

// newRootCommand builds the pidof command. finderOpts are applied before the
// flag-derived options; tests use them to swap the process table.
func newRootCommand(info *version.Info, finderOpts ...procutil.Option) *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "pidof NAME",
		Short:         "Print the PID of a running process by executable name",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch o.output {
			case "default", "json", "yaml":
			default:
				return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", o.output)
			}
			logutil.SetupLoggerWithWriter(cmd.ErrOrStderr(), o.debug, o.structuredLogs)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := append([]procutil.Option{}, finderOpts...)
			if o.ignoreCase {
				opts = append(opts, procutil.WithFoldCase())
			}
			return runLookup(cmd.OutOrStdout(), args[0], o.output, procutil.NewFinder(opts...))
		},
	}
	bindFlags(cmd.PersistentFlags(), o)
	cmd.AddCommand(version.NewCommand(info, &o.output))
	return cmd
}

func runLookup(w io.Writer, name, format string, finder *procutil.Finder) error {
	pid, ok, err := finder.FindProcessID(name)
	if err != nil {
		return err
	}
	if err := printResult(w, format, lookupResult{Name: name, PID: pid, Found: ok}); err != nil {
		return err
	}
	if !ok {
		return errNotFound
	}
	return nil
}

func printResult(w io.Writer, format string, r lookupResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	// Like pidof(1), print nothing when the process is absent.
	if !r.Found {
		return nil
	}
	if useColor(w) {
		_, err := fmt.Fprintf(w, "%s%d%s\n", colorGreen, r.PID, colorReset)
		return err
	}
	_, err := fmt.Fprintln(w, r.PID)
	return err
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitFound
	case errors.Is(err, errNotFound):
		return exitNotFound
	default:
		return exitFailure
	}
}
