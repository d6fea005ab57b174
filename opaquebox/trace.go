package opaquebox

import (
	"context"
	"sync/atomic"
	"unsafe"

	"github.com/LerianStudio/lib-opaquebox/opaquebox/internal/nilcheck"
	"github.com/LerianStudio/lib-opaquebox/opaquebox/log"
)

type loggerHolder struct {
	logger log.Logger
}

var (
	packageLogger atomic.Pointer[loggerHolder]
	readTracing   atomic.Bool
	nopLogger     = log.NewNop()
)

// SetLogger installs the logger used for read tracing and access failures.
// Passing nil, including a typed nil, restores the no-op logger.
func SetLogger(logger log.Logger) {
	if nilcheck.IsNil(logger) {
		logger = nopLogger
	}

	packageLogger.Store(&loggerHolder{logger: logger})
}

// Logger returns the logger installed with SetLogger.
//
//nolint:ireturn
func Logger() log.Logger {
	if holder := packageLogger.Load(); holder != nil {
		return holder.logger
	}

	return nopLogger
}

// SetReadTracing turns the debug "dereference" entry on every read on or off.
// It is off by default.
func SetReadTracing(enabled bool) {
	readTracing.Store(enabled)
}

// ReadTracing reports whether read tracing is on.
func ReadTracing() bool {
	return readTracing.Load()
}

func traceRead[T any](handle *T) {
	traceHandle("dereference", handle)
}

func traceRelease[T any](handle *T) {
	traceHandle("release", handle)
}

func traceHandle[T any](msg string, handle *T) {
	if !readTracing.Load() {
		return
	}

	logger := Logger()
	if !logger.Enabled(log.LevelDebug) {
		return
	}

	logger.Log(context.Background(), log.LevelDebug, msg,
		log.String("type", typeName[T]()),
		log.Uint64("size", sizeOf[T]()),
		log.Address("address", uintptr(unsafe.Pointer(handle))),
	)
}

func reportAccessError(err *AccessError) {
	Logger().Log(context.Background(), log.LevelError, "read through released handle",
		log.String("operation", err.Operation),
		log.String("type", err.Type),
		log.Err(err),
	)
}
