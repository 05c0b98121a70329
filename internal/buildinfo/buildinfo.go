// Package buildinfo exposes build metadata injected via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/buildinfo.Version=1.2.0"
package buildinfo

import (
	"cmp"
	"fmt"
)

var (
	Version   string
	BuildDate string
	Commit    string
)

// String renders the metadata for the version banner. Unset values print as N/A.
func String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		cmp.Or(Version, "N/A"), cmp.Or(BuildDate, "N/A"), cmp.Or(Commit, "N/A"))
}
