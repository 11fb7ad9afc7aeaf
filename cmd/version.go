package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "edulanding", describeVersion(resolveVersion()))
	},
}

// resolveVersion prefers the ldflags value, then the module version recorded
// by `go install`.
func resolveVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return version
}

// describeVersion normalizes v to canonical semver and flags builds that are
// not tagged releases.
func describeVersion(v string) string {
	if v == "(devel)" || v == "" {
		return "(devel)"
	}
	sv := v
	if sv[0] != 'v' {
		sv = "v" + sv
	}
	if !semver.IsValid(sv) {
		return v + " (unrecognized version)"
	}
	canon := semver.Canonical(sv)
	if semver.Prerelease(sv) != "" {
		return canon + " (pre-release)"
	}
	return canon
}
