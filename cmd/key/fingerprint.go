package key

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Electron-Labs/groth16-verifier/circom"
	"github.com/Electron-Labs/groth16-verifier/verifier"
)

var fingerprintVkeyPath string

// fingerprintCmd represents the fingerprint command
var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Print the keccak-256 fingerprint of a verification key",
	Run: func(cmd *cobra.Command, args []string) {
		err := runFingerprint()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
	},
}

func init() {
	keyCmd.AddCommand(fingerprintCmd)
	fingerprintCmd.Flags().StringVar(&fingerprintVkeyPath, "vkey", "verification_key.json", "snarkjs verification key json")
}

func runFingerprint() error {
	data, err := os.ReadFile(fingerprintVkeyPath)
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
	digest, err := verifier.VKFingerprint(vk)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(digest))
	return nil
}
