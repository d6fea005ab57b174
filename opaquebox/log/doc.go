// Package log defines the logging contract used by opaquebox and its typed
// fields.
//
// The default is a no-op logger. The zap subpackage provides the production
// implementation.
package log
