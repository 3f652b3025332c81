// Package logging builds the slog loggers Cutline components share.
//
// Two output formats are supported: a console handler that renders
// timestamp, level, component, message, and flattened key=value attributes
// on one line, and a JSON handler for machine consumption. Outputs can fan
// out to stdout/stderr and log files. Component loggers carry a standard
// "component" attribute so console lines stay scannable.
package logging
