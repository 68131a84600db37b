package config

import (
	"flag"
	"fmt"
	"slices"
)

var migrateCommands = []string{"up", "down", "status"}

// parses CLI flags for the migrate command
func ParseMigrateFlags(args []string) (Flags, error) {
	defaults := DefaultMigrateFlags()

	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	command := fs.String("command", defaults.Command, "migration command: up, down or status")
	dir := fs.String("dir", defaults.Dir, "directory inside the embedded migrations filesystem")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	if !slices.Contains(migrateCommands, *command) {
		return Flags{}, fmt.Errorf("unknown migrate command %q", *command)
	}

	return Flags{Command: *command, Dir: *dir}, nil
}

// returns default flags for migrations
func DefaultMigrateFlags() Flags {
	return Flags{Command: "up", Dir: "."}
}
