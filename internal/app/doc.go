// Package app contains the core application logic: loading experiment
// files, expanding them into concrete configurations, tagging provenance,
// and rendering the result. It is decoupled from any specific entrypoint
// like a CLI.
package app
