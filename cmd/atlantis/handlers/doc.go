// Package handlers implements the business logic behind CLI commands.
//
// Handlers build the run's collaborators (AWS clients, prompter, reporter,
// git sync and metrics) from flags and settings, then hand control to the
// teardown orchestrator. Collaborators are created through package-level
// factory variables so tests can replace them.
package handlers
