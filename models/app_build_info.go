package models

import "fmt"

const buildInfoUnknown = "N/A"

// AppBuildInfo is the version metadata injected into the server binary by
// linker flags. Empty fields mean the value was not provided at build time.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// Banner renders the startup banner, substituting N/A for missing values.
func (a AppBuildInfo) Banner() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orUnknown(a.version), orUnknown(a.date), orUnknown(a.commit))
}

func orUnknown(value string) string {
	if value == "" {
		return buildInfoUnknown
	}
	return value
}
