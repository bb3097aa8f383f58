// Package cli implements studentctl, a command-line front-end for the student records API.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yigit/studentrecords/internal/studentclient"
	"github.com/yigit/studentrecords/internal/view"
)

const (
	defaultHost = "http://localhost:8080"
	hostEnv     = "STUDENTCTL_HOST"
)

// IO holds the streams a command reads and writes
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// IsTerminal reports whether In is interactive
	IsTerminal func() bool
}

// StdIO binds the process streams
func StdIO() IO {
	return IO{
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
		IsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Execute runs studentctl with args and returns the process exit code
func Execute(args []string, streams IO) int {
	rootCmd := newRootCmd(streams)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = printJSON(streams.Out, map[string]string{"error": err.Error()})
		} else {
			fmt.Fprintf(streams.Err, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

type rootOptions struct {
	host    string
	output  string
	streams IO
}

func newRootCmd(streams IO) *cobra.Command {
	opts := &rootOptions{streams: streams}

	rootCmd := &cobra.Command{
		Use:           "studentctl",
		Short:         "Manage student records",
		Long:          "Command-line interface for the student records API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Apply precedence: flag > env > default
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv(hostEnv); v != "" {
					opts.host = v
				}
			}
			return validateOutputFormat(opts.output)
		},
	}
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	rootCmd.PersistentFlags().StringVar(&opts.host, "host", defaultHost, "API host URL (env "+hostEnv+")")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json)")

	rootCmd.AddCommand(
		newListCmd(opts),
		newCreateCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
	)
	return rootCmd
}

func validateOutputFormat(output string) error {
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

// session builds a view session over the REST client; backend failures are logged to stderr
func (o *rootOptions) session(confirm view.ConfirmFunc) *view.Session {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: o.streams.Err, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}})
	opts := []view.Option{view.WithLogger(logger)}
	if confirm != nil {
		opts = append(opts, view.WithConfirm(confirm))
	}
	return view.NewSession(studentclient.NewClient(o.host), opts...)
}

// prompt asks a yes/no question on the command's streams
func (o *rootOptions) prompt(question string) bool {
	if o.streams.IsTerminal == nil || !o.streams.IsTerminal() {
		return false
	}
	fmt.Fprintf(o.streams.Out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(o.streams.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
