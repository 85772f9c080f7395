// Package exitcode provides the process exit codes for feedline
package exitcode

// Exit codes for the feedline CLI. Individual path failures are not
// distinguished: any Error outcome exits with PathError.
const (
	Success     = 0
	PathError   = 1
	ConfigError = 2
)

// String returns a human-readable description of the exit code
func String(code int) string {
	switch code {
	case Success:
		return "Success"
	case PathError:
		return "One or more paths failed"
	case ConfigError:
		return "Configuration error"
	default:
		return "Unknown error"
	}
}
