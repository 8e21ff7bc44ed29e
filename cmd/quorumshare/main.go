// Command quorumshare splits secrets into threshold shares and reconstructs
// them, using Shamir, Rabin, or Krawczyk secret sharing.
package main

import (
	"github.com/quorumshare/quorumshare/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
