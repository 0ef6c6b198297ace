package main

import (
	"github.com/Electron-Labs/groth16-verifier/cmd"
	_ "github.com/Electron-Labs/groth16-verifier/cmd/key"
	_ "github.com/Electron-Labs/groth16-verifier/cmd/proof"
)

func main() {
	cmd.Execute()
}
