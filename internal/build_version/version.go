package build_version

// Set at link time with -ldflags "-X github.com/LogFlames/etd/internal/build_version.version=...".
var version = "dev"

func GetVersion() string {
	return version
}
