package proof

import (
	"github.com/spf13/cobra"

	"github.com/Electron-Labs/groth16-verifier/cmd"
)

// proofCmd represents the proof command
var proofCmd = &cobra.Command{
	Use:   "proof",
	Short: "Check proofs against a prepared verification key",
}

func init() {
	cmd.RootCmd.AddCommand(proofCmd)
}
