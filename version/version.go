// Package version holds build information for killbysubdir. Version,
// BuildDate and GitCommit are set via ldflags at build time.
package version

import "fmt"

// Info holds version information for a binary.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	Name      string `json:"name"`
}

// New creates a new Info with default values.
func New(name string) *Info {
	return &Info{
		Version:   "0.0.0-dev",
		BuildDate: "unknown",
		GitCommit: "unknown",
		Name:      name,
	}
}

// WithBuild overrides the defaults with non-empty ldflags values.
func (i *Info) WithBuild(version, buildDate, gitCommit string) *Info {
	if version != "" {
		i.Version = version
	}
	if buildDate != "" {
		i.BuildDate = buildDate
	}
	if gitCommit != "" {
		i.GitCommit = gitCommit
	}
	return i
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
