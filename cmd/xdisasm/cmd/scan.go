package cmd

import (
	"fmt"

	"github.com/keurnel/xdisasm/internal/decodetrace"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:     "scan [hex-bytes]",
	GroupID: "decode",
	Short:   "Walk a hex-encoded byte string instruction by instruction",
	Long: `Scan decodes a hex-encoded byte string from front to back, one
instruction at a time, and reports the byte offset and opcode of each
instruction, plus its length when it decoded cleanly or its error flags when
it did not. Still no mnemonic or operand text — only flag names and offsets.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScan(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

func runScan(cmd *cobra.Command, args []string) error {
	code, err := readHexInput(cmd, args)
	if err != nil {
		return err
	}
	if len(code) == 0 {
		return fmt.Errorf("no input bytes")
	}

	trace := decodetrace.New("scan")
	n := decodetrace.Scan(trace, code)

	for _, e := range trace.Entries() {
		if e.Note() != "" {
			cmd.Printf("%s %s (%s)\n", e.Severity(), e.String(), e.Note())
		} else {
			cmd.Println(e.String())
		}
	}
	cmd.Printf("scanned %d instructions, %d error(s)\n", n, countErrors(trace))
	return nil
}

func countErrors(t *decodetrace.Trace) int {
	count := 0
	for _, e := range t.Entries() {
		if e.Severity() == decodetrace.SeverityError {
			count++
		}
	}
	return count
}
