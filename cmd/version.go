package cmd

// Version is the application version.
// Set it at build time with -ldflags "-X github.com/xqrs/gridview/cmd.Version=1.0.0".
var Version = "dev"
