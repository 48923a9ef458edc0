// Package logger wraps zerolog with restkit conventions: a small Config,
// component-tagged sub-loggers, and map-based structured fields. Every
// package in the kit that logs does so through this package so output is
// uniform regardless of which layer produced it.
package logger
