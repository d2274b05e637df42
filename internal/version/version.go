package version

// version is overridden at release time via -ldflags.
var version = "0.1.0"

// GetVersion returns the tool version string.
func GetVersion() string {
	return version
}
