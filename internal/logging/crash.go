package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// exitCodePanic is returned by the process after a logged panic.
const exitCodePanic = 2

// exit is replaced in tests.
var exit = os.Exit

// RecoverPanic logs a panic with its stack trace and exits. Use it with
// defer at the top of main:
//
//	defer logging.RecoverPanic(&logger)
func RecoverPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logPanic(logger, r, debug.Stack())
	exit(exitCodePanic)
}

func logPanic(logger *zerolog.Logger, r any, stack []byte) {
	if logger == nil || logger.GetLevel() == zerolog.Disabled {
		fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, stack)
		return
	}
	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", stack).
		Msg("unrecovered panic")
}
