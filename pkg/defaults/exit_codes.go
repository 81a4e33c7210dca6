package defaults

// Exit codes for the CLI.
const (
	ExitSuccess       = 0 // Clean exit, severity below the gate
	ExitSeverityGate  = 1 // Assessed severity at or above -fail-on
	ExitUserError     = 2 // Invalid arguments, config, or input file
	ExitInternalError = 3 // Unexpected internal error
)
