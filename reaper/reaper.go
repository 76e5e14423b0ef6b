package reaper

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jongio/killbysubdir/logutil"
	"github.com/jongio/killbysubdir/metrics"
	"github.com/jongio/killbysubdir/pathutil"
	"github.com/jongio/killbysubdir/procutil"
)

// Killer delivers the termination signal to one process.
type Killer func(pid int) error

// Report summarizes one scan.
type Report struct {
	Target       string `json:"target"`
	Scanned      int    `json:"scanned"`
	Skipped      int    `json:"skipped"`
	Matched      []int  `json:"matched"`
	Killed       int    `json:"killed"`
	KillFailures int    `json:"killFailures"`
}

// Scanner kills processes whose working directory lies inside a target.
type Scanner struct {
	// ProcRoot is the process-information directory.
	ProcRoot string
	// Out receives one "Killing process <id>" line per match. Nil disables
	// the lines.
	Out io.Writer
	// Kill signals a matched process.
	Kill Killer
	// SelfPID is never signalled.
	SelfPID int
	// Metrics receives per-process counters.
	Metrics *metrics.Recorder

	log *logutil.ComponentLogger
	now func() time.Time
}

// NewScanner returns a Scanner over procRoot that prints to out and kills
// with procutil.Kill.
func NewScanner(procRoot string, out io.Writer) *Scanner {
	return &Scanner{
		ProcRoot: procRoot,
		Out:      out,
		Kill:     procutil.Kill,
		SelfPID:  os.Getpid(),
		Metrics:  metrics.NewRecorder(),
		log:      logutil.NewLogger("reaper"),
		now:      time.Now,
	}
}

// Run scans once and kills every process inside target. target must be
// canonical (see pathutil.Canonicalize). The only error is failure to read
// the process directory, in which case nothing has been signalled.
func (s *Scanner) Run(target string) (*Report, error) {
	start := s.now()

	pids, err := procutil.Enumerate(s.ProcRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes in %s: %w", s.ProcRoot, err)
	}

	log := s.log.WithFields("target", target)
	log.Debug("scanning processes", "entries", len(pids), "root", s.ProcRoot)

	report := &Report{Target: target, Matched: []int{}}
	for _, pid := range pids {
		s.visit(log.WithPID(pid), target, pid, report)
	}

	end := s.now()
	s.Metrics.Finished(end.Sub(start), end)
	log.Debug("scan complete",
		"scanned", report.Scanned,
		"skipped", report.Skipped,
		"matched", len(report.Matched),
		"killed", report.Killed,
		"kill_failures", report.KillFailures)

	return report, nil
}

func (s *Scanner) visit(log *logutil.ComponentLogger, target string, pid int, report *Report) {
	report.Scanned++
	s.Metrics.Scanned()

	cwd, err := procutil.ResolveCwd(s.ProcRoot, pid)
	if err != nil {
		report.Skipped++
		s.Metrics.Skipped(skipReason(err))
		log.Debug("skipping process", "error", err)
		return
	}

	if !pathutil.IsWithin(target, cwd) {
		return
	}

	if pid == s.SelfPID {
		report.Skipped++
		s.Metrics.Skipped(metrics.ReasonSelf)
		log.Debug("not signalling own process", "cwd", cwd)
		return
	}

	report.Matched = append(report.Matched, pid)
	s.Metrics.Matched()

	if s.Out != nil {
		fmt.Fprintf(s.Out, "Killing process %d\n", pid)
	}
	if log.DebugEnabled() {
		log.Debug("killing process", "name", procutil.Describe(s.ProcRoot, pid), "cwd", cwd)
	}

	err = s.Kill(pid)
	s.Metrics.Killed(err)
	if err != nil {
		report.KillFailures++
		log.Debug("signal not delivered", "error", err)
		return
	}
	report.Killed++
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, procutil.ErrLinkTooLong):
		return metrics.ReasonLinkTooLong
	case errors.Is(err, procutil.ErrUnusableTarget):
		return metrics.ReasonUnusableTarget
	default:
		return metrics.ReasonUnresolvable
	}
}
