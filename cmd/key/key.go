package key

import (
	"github.com/spf13/cobra"

	"github.com/Electron-Labs/groth16-verifier/cmd"
)

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Prepare and inspect verification keys",
}

func init() {
	cmd.RootCmd.AddCommand(keyCmd)
}
