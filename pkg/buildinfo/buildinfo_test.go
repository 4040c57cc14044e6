package buildinfo

import (
	"fmt"
	"runtime/debug"
	"testing"

	. "src.pless.dev/pkg/prog/progtest"
	"src.pless.dev/pkg/tt"
)

func TestProgram(t *testing.T) {
	Test(t, &Program{},
		That("-version").WritesStdout(Value.Version+"\n"),
		That("-version", "-json").WritesStdout(mustToJSON(Value.Version)+"\n"),

		That("-buildinfo").WritesStdout(
			fmt.Sprintf(
				"Version: %v\nGo version: %v\n", Value.Version, Value.GoVersion)),
		That("-buildinfo", "-json").WritesStdout(mustToJSON(Value)+"\n"),

		That().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}

// devVersionOf runs devVersion with a next version of 0.9.0 and the given
// build info; nil means that no build info is available.
func devVersionOf(vcsOverride string, bi *debug.BuildInfo) string {
	return devVersion("0.9.0", vcsOverride, func() (*debug.BuildInfo, bool) {
		return bi, bi != nil
	})
}

func vcs(revision, time, modified string) *debug.BuildInfo {
	return &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: revision},
		{Key: "vcs.time", Value: time},
		{Key: "vcs.modified", Value: modified},
	}}
}

func TestDevVersion(t *testing.T) {
	tt.Test(t, tt.Fn("devVersion", devVersionOf),
		tt.Args("", (*debug.BuildInfo)(nil)).Rets("0.9.0-dev.unknown"),
		tt.Args("", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}).
			Rets("0.9.0-dev.unknown"),
		// A module version from "go install pkg@version" wins.
		tt.Args("", &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0-rc1"}}).
			Rets("0.9.0-rc1"),

		tt.Args("", vcs("abcdef0123456789", "2024-03-05T06:07:08Z", "false")).
			Rets("0.9.0-dev.0.20240305060708-abcdef012345"),
		tt.Args("", vcs("abcdef0123456789", "2024-03-05T06:07:08Z", "true")).
			Rets("0.9.0-dev.0.20240305060708-abcdef012345-dirty"),
		// Non-UTC timestamps are normalized.
		tt.Args("", vcs("abcdef", "2024-03-05T08:07:08+02:00", "false")).
			Rets("0.9.0-dev.0.20240305060708-abcdef"),
		tt.Args("", vcs("abcdef0123456789", "March Fifth", "false")).
			Rets("0.9.0-dev.unknown"),
		tt.Args("", vcs("", "2024-03-05T06:07:08Z", "false")).
			Rets("0.9.0-dev.unknown"),

		tt.Args("20240305060708-abcdef012345", (*debug.BuildInfo)(nil)).
			Rets("0.9.0-dev.0.20240305060708-abcdef012345"),
	)
}
