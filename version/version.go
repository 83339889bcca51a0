// Package version holds build information for procfind binaries and a
// reusable cobra "version" command.
package version

import "fmt"

// Info holds version information for a binary.
type Info struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
}

// New creates an Info with development defaults. Version, BuildDate and
// GitCommit are expected to be overridden via ldflags at build time.
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   "0.0.0-dev",
		BuildDate: "unknown",
		GitCommit: "unknown",
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
