// Package version holds the build information for the service.
//
// The values are set at build time, e.g:
//
//	go build -ldflags "-X github.com/information-sharing-networks/cicd-demo/internal/version.gitCommit=$(git rev-parse --short HEAD)"
package version

var (
	version   = "1.0.0"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string
	BuildDate string
	GitCommit string
}

func Get() Info {
	return Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}
}
