// Package version reports what build is running. The variables below are stamped with
//
//	go build -ldflags "-X leetgen/internal/core/version.version=v0.1.0 -X leetgen/internal/core/version.commit=abcd"
package version

var (
	service = "leetgen-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo identifies a build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info is the API server's build
func Info() BuildInfo {
	return BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
}

// For is Info under another binary's name
func For(name string) BuildInfo {
	b := Info()
	b.Service = name
	return b
}
