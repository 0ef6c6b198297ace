package key

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Electron-Labs/groth16-verifier/circom"
	"github.com/Electron-Labs/groth16-verifier/verifier"
)

var (
	prepareVkeyPath string
	prepareOutPath  string
)

// prepareCmd represents the prepare command
var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Precompute pairing data for a verification key and store it in binary form",
	Run: func(cmd *cobra.Command, args []string) {
		err := runPrepare()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
	},
}

func init() {
	keyCmd.AddCommand(prepareCmd)
	prepareCmd.Flags().StringVar(&prepareVkeyPath, "vkey", "verification_key.json", "snarkjs verification key json")
	prepareCmd.Flags().StringVar(&prepareOutPath, "out", "prepared_vk.bin", "output file for the prepared key")
}

func runPrepare() error {
	data, err := os.ReadFile(prepareVkeyPath)
	if err != nil {
		return err
	}
	vkJSON, err := circom.ParseVerificationKey(data)
	if err != nil {
		return err
	}
	vk, err := vkJSON.VerifyingKey()
	if err != nil {
		return err
	}
	pvk, err := verifier.Prepare(vk)
	if err != nil {
		return err
	}

	out, err := os.Create(prepareOutPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := pvk.WriteTo(out); err != nil {
		return err
	}
	fmt.Printf("prepared key for %d public inputs written to %s\n", len(vk.GammaABCG1)-1, prepareOutPath)
	return nil
}
