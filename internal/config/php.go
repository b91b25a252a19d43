package config

import (
	"context"
	"strings"

	"github.com/wagnert/meta/internal/logging"
	"github.com/wagnert/meta/internal/system"
)

// QueryPHPVersion asks the PHP binary for its version. It falls back to
// DefaultPHPVersion when the binary is missing or prints nothing.
func QueryPHPVersion(ctx context.Context, exec system.CommandExecutor, binary string) string {
	if binary == "" {
		binary = "php"
	}

	out, err := exec.Execute(ctx, binary, "-r", "echo PHP_VERSION;")
	if err != nil {
		logging.Debug("php version query failed", "binary", binary, "error", err)
		return DefaultPHPVersion
	}

	version := strings.TrimSpace(string(out))
	if version == "" {
		return DefaultPHPVersion
	}
	return version
}
