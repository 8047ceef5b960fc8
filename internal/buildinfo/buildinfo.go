package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set at link time with -ldflags "-X svw.info/minesweeper/internal/buildinfo.Version=...".
// Left unset, they are filled from the module and VCS data the go tool embeds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// Info is the resolved build identity.
type Info struct {
	Version  string
	Commit   string
	Date     string
	Modified bool
}

func Resolve() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
				if len(info.Commit) > 12 {
					info.Commit = info.Commit[:12]
				}
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func String() string {
	info := Resolve()
	s := fmt.Sprintf("minesweeper %s (commit=%s, date=%s)", info.Version, info.Commit, info.Date)
	if info.Modified {
		s += " dirty"
	}
	return s
}
