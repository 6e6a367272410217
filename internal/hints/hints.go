// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net/url"
	"strings"

	"github.com/alnah/go-proposal/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForDatabaseConnect returns hints for database connection errors, based on
// the DSN the server tried.
func ForDatabaseConnect(dsn string) string {
	if dsn == "" {
		return format("set DATABASE_URL, or start with --memory to use the in-memory store")
	}

	var hints []string
	if u, err := url.Parse(dsn); err == nil {
		host := u.Hostname()
		if IsInContainer() && (host == "localhost" || host == "127.0.0.1") {
			hints = append(hints, "localhost inside a container is the container itself; use the database service name")
		}
		if u.Query().Get("sslmode") == "" {
			hints = append(hints, "add ?sslmode=disable for a local database without TLS")
		}
	}
	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large batches, use --timeout flag")
}

// ForConfigNotFound suggests --config and a file in ~/.config/go-proposal/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-proposal") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetPath returns hints for an unusable --asset-path directory.
func ForAssetPath() string {
	return format("--asset-path must be a directory holding proposals/, styles/ or templates/")
}

// ForInvalidTemplate returns hints for a rejected custom proposal template.
func ForInvalidTemplate(categories []string) string {
	hint := "a proposal template must open with a '# Title' heading"
	if len(categories) > 0 {
		hint += "; expected files: " + strings.Join(categories, ".md, ") + ".md"
	}
	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
