package cattery

// release is the version of the last tagged release, with a suffix for
// development builds.
const release = "v0.1.0-dev"

// GitCommit is set at link time:
//
//	go build -ldflags "-X github.com/iov-one/cattery.GitCommit=$(git rev-parse --short HEAD)"
var GitCommit = ""

// Version returns the release, followed by the commit when known.
func Version() string {
	if GitCommit == "" {
		return release
	}
	return release + " " + GitCommit
}
