package version

// Version is overridable at build time via -ldflags "-X ...version.Version=".
var Version = "v14.0.0-dev"
