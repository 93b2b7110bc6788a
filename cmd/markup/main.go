package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┬─┐┬┌─┬ ┬┌─┐
  │││├─┤├┬┘├┴┐│ │├─┘
  ┴ ┴┴ ┴┴└─┴ ┴└─┘┴
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// Persistent flags shared by every command.
var (
	configPath string
	noColor    bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "markup",
		Short: "Render HTML attributes, tags and option lists",
		Long: `markup renders HTML markup from YAML or JSON documents.

Documents are read from a file argument or stdin:

  • attrs    attribute document -> attribute string
  • tag      tag document -> element from a builder
  • options  select document -> option lines
  • path     attribute expression -> input name and id
  • serve    the same renderers over HTTP`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || os.Getenv("NO_COLOR") != "" {
				errors.DisableColors()
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to markup.yaml (default: nearest in parent directories)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		attrsCmd(),
		tagCmd(),
		optionsCmd(),
		pathCmd(),
		encodeCmd(),
		decodeCmd(),
		serveCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads the --config file, or the nearest markup.yaml, or the
// defaults.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath, os.Getenv)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readInput returns the contents of the file named by args[0], or stdin
// when there is no argument and stdin is not a terminal.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, errors.New("M030").WithInput(args[0]).Wrap(err)
		}
		return data, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if st, err := f.Stat(); err == nil && st.Mode()&os.ModeCharDevice != 0 {
			return nil, errors.New("M030")
		}
	}
	return io.ReadAll(in)
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
