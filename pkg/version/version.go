package version

const (
	Name    = "wakeproxy"
	Version = "0.1.0"
	Date    = "2026-10-17"
)

// String is printed by --version.
func String() string {
	return Version + " - " + Date
}

// Line is the first line of the version route's response.
func Line() string {
	return Name + " version: " + Version
}
