package version

// Version is the current release of diff-explainer.
var Version = "0.1.0"
