package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version of green. Builds without -ldflags fall back to the
module version and VCS stamp recorded by the Go toolchain.`,
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		stampBuild(version, buildTime, info).write(cmd.OutOrStdout())
	},
}

type buildStamp struct {
	Version  string
	Revision string
	Modified bool
	Time     string
	Go       string
}

// stampBuild prefers the values injected at link time and fills the gaps
// from info, which may be nil.
func stampBuild(v, built string, info *debug.BuildInfo) buildStamp {
	s := buildStamp{Version: v, Time: built}
	if info == nil {
		return s
	}

	s.Go = info.GoVersion
	if (s.Version == "" || s.Version == "dev") && info.Main.Version != "" && info.Main.Version != "(devel)" {
		s.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			s.Revision = setting.Value
		case "vcs.modified":
			s.Modified = setting.Value == "true"
		case "vcs.time":
			if s.Time == "" || s.Time == "unknown" {
				s.Time = setting.Value
			}
		}
	}
	return s
}

func (s buildStamp) write(w io.Writer) {
	fmt.Fprintf(w, "green version %s\n", s.Version)
	if s.Revision != "" {
		rev := s.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if s.Modified {
			rev += " (modified)"
		}
		fmt.Fprintf(w, "Commit: %s\n", rev)
	}
	fmt.Fprintf(w, "Built: %s\n", s.Time)
	if s.Go != "" {
		fmt.Fprintf(w, "Go: %s\n", s.Go)
	}
}
