// Package cmd The command line tool for running imresize.
package cmd

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-imsto/imresize/config"
	zlog "github.com/go-imsto/imresize/log"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const examples = `  imresize 1980                        # Resize to max width 1980px
  imresize 1920 --quality 90           # Resize with 90% quality
  imresize 1600 --backup               # Create backups before resizing
  imresize 1980 --albums-dir ./photos  # Use different albums directory
  imresize 1980 --dry-run              # List what would be processed`

func logger() zlog.Logger {
	return zlog.Get()
}

// Main runs imresize with the process arguments and exits
func Main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes one invocation and returns the process exit status.
// Log records go to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Default()
	status := exitOK

	cmd := &cobra.Command{
		Use:           "imresize <max_width>",
		Short:         "Resize images in albums directory",
		Long:          "Resize every image under the albums directory to a maximum width, keeping the aspect ratio, and save it as JPEG in place.",
		Example:       examples,
		Version:       config.Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			w, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				w = 0
			}
			cfg.MaxWidth = w
			if err = cfg.Validate(); err != nil {
				errorf(stdout, "Error: %s", err)
				status = exitFail
				return nil
			}

			zl := zlog.NewConsole(stderr, cfg.Verbose)
			defer zl.Sync() // flushes buffer, if any
			zlog.Set(zl.Sugar())

			status = runResize(cfg)
			return nil
		},
	}
	cmd.SetArgs(negativesLast(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.IntVar(&cfg.Quality, "quality", config.DefaultQuality, "JPEG quality 1-100")
	fs.StringVar(&cfg.AlbumsDir, "albums-dir", config.DefaultAlbumsDir, "Path to albums directory")
	fs.BoolVar(&cfg.Backup, "backup", false, "Create backup copies of original images")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Show what would be processed without making changes")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log ignored files and directories")

	if err := cmd.Execute(); err != nil {
		errorf(stderr, "Error: %s\nRun 'imresize --help' for usage.", err)
		return exitUsage
	}
	return status
}

var negInt = regexp.MustCompile(`^-\d+$`)

// negativesLast moves a negative positional such as "-5" behind "--" so it
// reaches validation instead of being parsed as a shorthand flag.
func negativesLast(args []string) []string {
	out := make([]string, 0, len(args)+1)
	var tail []string
	for i, a := range args {
		if a == "--" {
			return append(append(out, args[i:]...), tail...)
		}
		if negInt.MatchString(a) && (i == 0 || args[i-1] != "--quality") {
			tail = append(tail, a)
			continue
		}
		out = append(out, a)
	}
	if len(tail) == 0 {
		return out
	}
	return append(append(out, "--"), tail...)
}

func errorf(w io.Writer, format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(w, format, args...)
}
