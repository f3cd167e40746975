package models

// AppBuildInfo describes the running build. Exposed via the version endpoint.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
