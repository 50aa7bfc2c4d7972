// Parses flags and configures logging for the cubeci orchestrator.
//
// The tool accepts the following global flags:
//
//	-q, --quiet        Suppress informational output.
//	-v, --verbose      Enable verbose output.
//	-d, --debug        Enable debug output.
//	-c, --config       Configuration file path.
//	-e, --environment  Environment tag ($CUBECI_ENVIRONMENT).
//	-n, --dry-run      Print commands instead of executing them.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level before any target
// is dispatched.
package cli
