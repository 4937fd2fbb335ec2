// Package logger is the structured logger used by the converter and its CLI.
//
// It wraps charmbracelet/log behind a small interface so the pipeline can be
// handed a logger through a context and tests can capture output.
package logger
