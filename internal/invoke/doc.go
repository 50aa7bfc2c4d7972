// Package invoke runs external commands on behalf of the dispatcher.
//
// Every side effect of the orchestrator (image builds, compose test runs,
// package installs, artifact cleanup) is delegated to an external process.
// A [Command] describes one such process: a shell command line executed as
// "shell -c line" with optional environment overrides and working directory.
//
// Execution returns a typed [Result] rather than a bare error: a non-zero
// exit code is data for the caller to branch on, not a Go error. [ErrInvoke]
// is reserved for commands that could not run at all (missing shell, I/O
// failure).
//
// The [Runner] interface exists so the dispatcher can be exercised in tests
// with a recording fake instead of real processes.
package invoke
