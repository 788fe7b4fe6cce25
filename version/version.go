package version

// Version is the current aiscout release.
var Version = "1.2.0"
