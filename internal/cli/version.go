package cli

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit are set at build time via -ldflags.
//
//	go build -ldflags "-X github.com/scbrown/vroom/internal/cli.Version=v0.1.0
//	  -X github.com/scbrown/vroom/internal/cli.Commit=48cae1d"
//
// There is no version subcommand: every argument belongs to the package
// manager. The version shows up in the VROOM_DEBUG banner instead.
var (
	Version = ""
	Commit  = ""
)

const commitLen = 7

// versionString formats the build as "vroom v0.1.0 (48cae1d)" or, without
// any commit information, "vroom dev".
func versionString() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if c := buildCommit(); c != "" {
		return fmt.Sprintf("vroom %s (%s)", v, c)
	}
	return "vroom " + v
}

// buildCommit returns the abbreviated commit: Commit when set by the linker,
// otherwise the vcs.revision stamped into the binary by the go tool.
func buildCommit() string {
	c := Commit
	if c == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
					break
				}
			}
		}
	}
	return c[:min(len(c), commitLen)]
}
