// Package version exposes the build identity stamped in via ldflags.
package version

// Version and GitCommit are injected at build time, e.g.
// -ldflags "-X .../pkg/version.Version=v1.2.3 -X .../pkg/version.GitCommit=$(git rev-parse HEAD)".
var (
	Version   string
	GitCommit string
)

const defaultVersion = "v0.1.0"

// GetVersion renders "vX.Y.Z" or "vX.Y.Z-<sha7>" when a commit is known,
// falling back to the default for builds without ldflags.
func GetVersion() string {
	v := Version
	if v == "" {
		v = defaultVersion
	}
	commit := GitCommit
	if commit == "" {
		return v
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return v + "-" + commit
}
