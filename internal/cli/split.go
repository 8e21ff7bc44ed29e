package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quorumshare/quorumshare/internal/cli/runner"
	"github.com/quorumshare/quorumshare/internal/krawczyk"
	"github.com/quorumshare/quorumshare/internal/logging"
	"github.com/quorumshare/quorumshare/internal/rabin"
	"github.com/quorumshare/quorumshare/internal/rng"
	"github.com/quorumshare/quorumshare/internal/shamir"
	"github.com/quorumshare/quorumshare/internal/sharefile"
)

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split a secret into n shares, any k of which reconstruct it",
	Long: `Split reads a secret from the given file, or from stdin if no file is
given, and writes n share files next to it (or under --out). The scheme is
chosen with --algo:

  shamir    information-theoretic secrecy, full-size shares, any byte count
  rabin     no secrecy, shares of size ceil(len/k), erasure coding only
  krawczyk  secrecy with rabin's storage cost (encrypt, then disperse)`,
	Example: `  quorumshare split --algo shamir --k 3 --n 5 secret.bin
  cat secret.bin | quorumshare split --algo krawczyk --k 2 --n 3 --out ./shares`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	f := splitCmd.Flags()
	f.String("algo", "shamir", "scheme to use: shamir, rabin, or krawczyk")
	f.Int("k", 0, "threshold: shares needed to reconstruct (required)")
	f.Int("n", 0, "total shares to produce (required)")
	f.String("out", "", "output directory for share files (default: alongside the input)")
	_ = splitCmd.MarkFlagRequired("k")
	_ = splitCmd.MarkFlagRequired("n")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	flags := runner.Flags(cmd)
	algo := sharefile.Algo(flags.String("algo"))
	k := flags.Int("k")
	n := flags.Int("n")
	outDir := flags.String("out")
	if err := flags.Err(); err != nil {
		return err
	}

	secret, base, err := readSecret(args)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = filepath.Dir(base)
	}
	if err := os.MkdirAll(outDir, 0700); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	base = filepath.Join(outDir, filepath.Base(base))

	logging.Info("splitting secret", logging.Fields(string(algo), k, n)...)
	logging.Info("secret size", logging.Int("bytes", len(secret)))

	var paths []string
	switch algo {
	case sharefile.AlgoShamir:
		paths, err = splitShamir(base, k, n, secret)
	case sharefile.AlgoRabin:
		paths, err = splitRabin(base, k, n, secret)
	case sharefile.AlgoKrawczyk:
		paths, err = splitKrawczyk(base, k, n, secret)
	default:
		return runner.ErrUnknownAlgorithm
	}
	if err != nil {
		return err
	}

	for _, p := range paths {
		PrintInfo("wrote %s", p)
	}
	return nil
}

func splitShamir(base string, k, n int, secret []byte) ([]string, error) {
	s, err := shamir.New(k, n, rng.CryptoSource{})
	if err != nil {
		return nil, err
	}
	shares, err := s.Share(secret)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(shares))
	for i, sh := range shares {
		paths[i] = sharefile.Name(base, sharefile.AlgoShamir, sh.ID)
		if err := sharefile.WriteShamir(paths[i], k, n, sh); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func splitRabin(base string, k, n int, secret []byte) ([]string, error) {
	s, err := rabin.New(k, n)
	if err != nil {
		return nil, err
	}
	shares, err := s.Share(secret)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(shares))
	for i, sh := range shares {
		paths[i] = sharefile.Name(base, sharefile.AlgoRabin, sh.ID)
		if err := sharefile.WriteRabin(paths[i], k, n, sh); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func splitKrawczyk(base string, k, n int, secret []byte) ([]string, error) {
	s, err := krawczyk.New(k, n, rng.CryptoSource{})
	if err != nil {
		return nil, err
	}
	shares, err := s.Share(secret)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(shares))
	for i, sh := range shares {
		paths[i] = sharefile.Name(base, sharefile.AlgoKrawczyk, sh.ID)
		if err := sharefile.WriteKrawczyk(paths[i], k, n, sh); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// readSecret reads the secret from args[0] if given, else from stdin, and
// returns a base name for derived share files.
func readSecret(args []string) ([]byte, string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, args[0], nil
	}

	info, statErr := os.Stdin.Stat()
	if statErr == nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return nil, "", runner.ErrNoInput
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read stdin: %w", err)
	}
	return data, "secret", nil
}
