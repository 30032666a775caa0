package buildinfo

// Version, Commit and Date are set at build time via -ldflags, e.g.
//
//	-X glidechart/internal/buildinfo.Version=v0.3.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and log lines.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns version, commit and build date.
func Long() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
