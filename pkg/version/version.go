package version

// These variables are injected at build time.

// S2PVersion hosts the version of the app.
var S2PVersion = "development"

// Commit is the commit hash of the build
var Commit string

// BuildDate is the date it was built
var BuildDate string
