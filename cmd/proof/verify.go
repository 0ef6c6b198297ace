package proof

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Electron-Labs/groth16-verifier/circom"
	"github.com/Electron-Labs/groth16-verifier/types"
	"github.com/Electron-Labs/groth16-verifier/verifier"
)

var (
	verifyPvkPath    string
	verifyProofPath  string
	verifyPublicPath string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a snarkjs proof against a prepared verification key",
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := runVerify()
		if err != nil {
			panic(fmt.Errorf("error: %v", err))
		}
		if !ok {
			fmt.Println("proof rejected")
			os.Exit(1)
		}
		fmt.Println("proof accepted")
	},
}

func init() {
	proofCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyPvkPath, "pvk", "prepared_vk.bin", "prepared verification key binary")
	verifyCmd.Flags().StringVar(&verifyProofPath, "proof", "proof.json", "snarkjs proof json")
	verifyCmd.Flags().StringVar(&verifyPublicPath, "public", "public.json", "public inputs json")
}

func runVerify() (bool, error) {
	pvkFile, err := os.Open(verifyPvkPath)
	if err != nil {
		return false, err
	}
	defer pvkFile.Close()
	var pvk types.PreparedVerifyingKey
	if _, err := pvk.ReadFrom(pvkFile); err != nil {
		return false, err
	}

	proofData, err := os.ReadFile(verifyProofPath)
	if err != nil {
		return false, err
	}
	proofJSON, err := circom.ParseProof(proofData)
	if err != nil {
		return false, err
	}
	proof, err := proofJSON.Proof()
	if err != nil {
		return false, err
	}

	publicData, err := os.ReadFile(verifyPublicPath)
	if err != nil {
		return false, err
	}
	inputStrs, err := circom.ParsePublicInputs(publicData)
	if err != nil {
		return false, err
	}
	inputs, err := circom.PublicInputs(inputStrs)
	if err != nil {
		return false, err
	}

	return verifier.Verify(&pvk, proof, inputs)
}
