// Command killbysubdir sends SIGKILL to every process whose working
// directory is the given directory or lies beneath it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jongio/killbysubdir/cliout"
	"github.com/jongio/killbysubdir/logutil"
	"github.com/jongio/killbysubdir/pathutil"
	"github.com/jongio/killbysubdir/procutil"
	"github.com/jongio/killbysubdir/reaper"
	"github.com/jongio/killbysubdir/version"
	"github.com/spf13/cobra"
)

// Set via -ldflags "-X main.Version=... -X main.BuildDate=... -X main.GitCommit=...".
var (
	Version   string
	BuildDate string
	GitCommit string
)

func main() {
	info := version.New("killbysubdir").WithBuild(Version, BuildDate, GitCommit)
	os.Exit(execute(newRootCmd(info, os.Stdout, procutil.Kill)))
}

// execute runs cmd and returns the process exit code. Errors are reported
// on the cliout error stream.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		cliout.Error("%v", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command. stdout receives kill lines or the JSON
// report; kill signals matched processes.
func newRootCmd(info *version.Info, stdout io.Writer, kill reaper.Killer) *cobra.Command {
	opts := reaper.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "killbysubdir [flags] <directory>",
		Short: "Kill every process working inside a directory subtree",
		Long: `killbysubdir sends SIGKILL to every process whose current working
directory is <directory> or lies beneath it. Symlinks are resolved on both
sides before comparing, and /foo never matches /foobar.

There is no confirmation and no grace period. The scan is a single snapshot
of the process table; processes that cannot be inspected are skipped.
killbysubdir never signals itself, even when run from inside <directory>.`,
		Args:          cobra.ExactArgs(1),
		Version:       info.Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation, failures are not usage errors.
			cmd.SilenceUsage = true
			return run(opts, args[0], stdout, cmd.ErrOrStderr(), kill)
		},
	}
	cmd.SetVersionTemplate(info.String() + "\n")
	opts.BindFlags(cmd.Flags())

	return cmd
}

// run performs one scan. Diagnostics go to stderr, which is os.Stderr
// unless the command was given another error writer.
func run(opts reaper.Options, dir string, stdout, stderr io.Writer, kill reaper.Killer) error {
	logutil.SetupLoggerWithWriter(stderr, opts.Debug, opts.Structured)
	if err := cliout.SetFormat(opts.Output); err != nil {
		return err
	}

	target, err := pathutil.Canonicalize(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve target directory: %w", err)
	}

	scanner := reaper.NewScanner(opts.ProcRoot, stdout)
	scanner.Kill = kill
	if cliout.IsJSON() {
		scanner.Out = nil
	}

	report, err := scanner.Run(target)
	if err != nil {
		return err
	}

	if opts.MetricsFile != "" {
		if err := scanner.Metrics.WriteTextfile(opts.MetricsFile); err != nil {
			logutil.NewLogger("cli").Warn("metrics not written", "path", opts.MetricsFile, "error", err)
		}
	}

	if cliout.IsJSON() {
		return cliout.PrintJSON(stdout, report)
	}
	return nil
}
