package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quorumshare/quorumshare/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "quorumshare",
	Short: "Split and reconstruct secrets with threshold secret sharing",
	Long: `quorumshare splits a file or stdin into n shares such that any k of
them reconstruct the original data; with shamir and krawczyk, fewer than k
shares reveal nothing useful about it. Three schemes are available: Shamir (information-theoretic,
per-byte), Rabin (space-efficient erasure coding, no secrecy), and Krawczyk
(encrypt-then-disperse, secrecy with Rabin's storage cost).`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string.
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initLogging() {
	logging.InitDefault()
}
