// Package cli provides the command-line interface for rangecal.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TUICommand     `command:"tui" description:"Pick a date range interactively" subcommands-optional:"true"`
	ShowCommand    ShowCommand    `command:"show" description:"Print the calendar (after the given operations) as text" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" description:"Show the program version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
