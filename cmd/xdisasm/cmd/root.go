package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xdisasm",
	Short: "x86/x86-64 instruction length decoder",
	Long: `xdisasm reads raw x86/x86-64 bytes and reports what the decoder
found: prefixes, REX, opcode, ModR/M, SIB, displacement, immediate, and
instruction length. It never prints a mnemonic or operand name.`,
}

// Execute runs the root command, exiting with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "decode",
		Title: "Decoding",
	})

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(scanCmd)
}
