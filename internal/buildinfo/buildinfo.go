package buildinfo

import "time"

// Set via -ldflags at build time
var (
	Version    string // release tag, empty for dev builds
	CommitHash string // short git commit hash
	BuildTime  string // when the binary was compiled
)

// StartTime is recorded when the process starts
var StartTime = time.Now().UTC().Format(time.RFC3339)

// Summary returns a human-readable version string for the health
// endpoint and startup log.
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if CommitHash != "" {
		v += " (" + CommitHash + ")"
	}
	return v
}
