// Package cli implements the pitheorem command line: the solve, matrix and
// presets subcommands on top of cobra, with viper-resolved settings and
// logrus diagnostics on standard error.
package cli
