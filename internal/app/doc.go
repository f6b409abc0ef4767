// Package app wires stores and services into the dependency graph the CLI
// subcommands share. The root command builds one App in its persistent
// pre-run; handlers never construct stores themselves.
package app
