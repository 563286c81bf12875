// Package main hosts the bookshelf CLI entrypoint and command graph.
//
// Running bookshelf with no subcommand starts the interactive menu. The list
// and search subcommands print the collection without prompting, and the
// config subcommands scaffold and check the configuration file. Configuration
// resolution, logger setup and backend selection happen here once so the
// commands only deal with presentation.
package main
