package reaper

import (
	"github.com/jongio/killbysubdir/cliout"
	"github.com/jongio/killbysubdir/procutil"
	"github.com/spf13/pflag"
)

// Options holds the command-line configuration of a run. None of it changes
// which processes match or which signal is sent.
type Options struct {
	ProcRoot    string
	Output      string
	MetricsFile string
	Debug       bool
	Structured  bool
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		ProcRoot: procutil.DefaultRoot,
		Output:   string(cliout.FormatDefault),
	}
}

// BindFlags registers the options on fs, using the current values as defaults.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Debug, "debug", o.Debug, "enable debug logging on stderr")
	fs.BoolVar(&o.Structured, "structured", o.Structured, "write logs as JSON")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "output format (default, json)")
	fs.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile, "write Prometheus textfile metrics to this path")
	fs.StringVar(&o.ProcRoot, "proc-root", o.ProcRoot, "process-information directory")
	_ = fs.MarkHidden("proc-root")
}
