// ============================================================================
// fvcalc - Simple Interest Future Value Calculator
// ============================================================================
//
// Package:     version
// Description: Central version and build information
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version
	App = "1.0.0"

	// Name of the binary
	Name = "fvcalc"
)

// Build information, set via -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running build
type Info struct {
	Name      string
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Name:      Name,
		Version:   App,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the build information as shown by "fvcalc version"
func (i Info) String() string {
	return fmt.Sprintf("%s v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Name, i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
