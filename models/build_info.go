package models

// BuildInfo carries build-time metadata injected through linker flags and
// surfaced in the TUI version overlay.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo normalizes empty linker values to "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return BuildInfo{Version: version, Date: date, Commit: commit}
}
