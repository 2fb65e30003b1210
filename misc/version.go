// Package misc holds build time information.
package misc

// Set with -ldflags "-X docxview/misc.version=... -X docxview/misc.gitHash=..."
var (
	appName = "docxview"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
