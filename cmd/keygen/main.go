// AngelaMos | 2026
// main.go

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/angelamos/gigbook/internal/auth"
)

// keygen writes a fresh ES256 key pair for signing access tokens.
// Point JWT_PRIVATE_KEY_PATH at the private key; the public key is
// what you hand to anything that only needs to verify.
func main() {
	privatePath := flag.String(
		"private",
		"jwt_private.pem",
		"path to write the private key",
	)
	publicPath := flag.String(
		"public",
		"jwt_public.pem",
		"path to write the public key",
	)
	flag.Parse()

	if err := auth.GenerateKeyPair(*privatePath, *publicPath); err != nil {
		slog.Error("key generation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("key pair written",
		"private", *privatePath,
		"public", *publicPath,
	)
}
