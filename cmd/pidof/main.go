// Command pidof prints the PID of a running process given its executable name.
//
//	pidof [flags] NAME
//
// Exit status is 0 when the process was found, 1 when it was not, and 2 on
// usage or lookup errors.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jongio/procfind/version"
)

// Set via -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.gitCommit=...".
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	info := version.New("pidof")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	err := newRootCommand(info).Execute()
	if err != nil && !errors.Is(err, errNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
