package cmdline

// Retcode is the numeric result a command handler or the dispatcher
// itself returns.
type Retcode int

const (
	RetcodeExecutingContinue Retcode = 1  // handler will call Interpreter.Ready later
	RetcodeSuccess           Retcode = 0  // command ran, no error
	RetcodeFail              Retcode = -1 // command ran, reported failure
	RetcodeInvalidParameters Retcode = -2 // bad argv; manual is printed if registered
	RetcodeNotImplemented    Retcode = -3
	RetcodeHandlerMissing    Retcode = -4
	RetcodeNotFound          Retcode = -5
	RetcodeCommandNotFound   Retcode = -5 // alias of NotFound, used by the dispatcher
	RetcodeBusy              Retcode = 2  // re-queue the segment, try again next tick
)
