package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, I/O failure)
	ExitConfigError = 2 // Configuration error (unreadable config, empty values)
	ExitDataError   = 3 // Data error (malformed bibliography)
)
