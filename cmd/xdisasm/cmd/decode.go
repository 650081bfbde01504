package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/keurnel/xdisasm/decoder"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:     "decode [hex-bytes]",
	GroupID: "decode",
	Short:   "Decode one instruction from a hex-encoded byte string",
	Long: `Decode reads a hex-encoded byte string, either as an argument or
from stdin, decodes a single instruction from its front, and prints the
resulting Record fields. It never resolves a mnemonic or operand name.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDecode(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

var decodeFormat string

func init() {
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "lines", `output format: "lines" or "go"`)
}

func runDecode(cmd *cobra.Command, args []string) error {
	code, err := readHexInput(cmd, args)
	if err != nil {
		return err
	}
	if len(code) == 0 {
		return fmt.Errorf("no input bytes")
	}

	rec := decoder.Decode(code)

	switch decodeFormat {
	case "lines":
		printRecordLines(cmd, rec)
	case "go":
		cmd.Println(formatRecordGo(rec))
	default:
		return fmt.Errorf("unknown --format %q (want \"lines\" or \"go\")", decodeFormat)
	}
	return nil
}

// readHexInput resolves the byte string to decode: the first positional
// argument if given, otherwise stdin.
func readHexInput(cmd *cobra.Command, args []string) ([]byte, error) {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)
	}

	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, "\n", "")

	code, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return code, nil
}

func printRecordLines(cmd *cobra.Command, rec decoder.Record) {
	cmd.Printf("length:      %d\n", rec.Length)
	cmd.Printf("bytes:       %s\n", hex.EncodeToString(rec.Bytes[:rec.Length]))
	cmd.Printf("prefix_lock: %#02x\n", rec.PrefixLock)
	cmd.Printf("prefix_rep:  %#02x\n", rec.PrefixRep)
	cmd.Printf("prefix_seg:  %#02x\n", rec.PrefixSeg)
	cmd.Printf("prefix_66:   %#02x\n", rec.Prefix66)
	cmd.Printf("prefix_67:   %#02x\n", rec.Prefix67)
	cmd.Printf("rex:         %#02x (w=%v r=%v x=%v b=%v)\n", rec.REX, rec.RexW, rec.RexR, rec.RexX, rec.RexB)
	cmd.Printf("opcode:      %#02x\n", rec.Opcode)
	cmd.Printf("opcode2:     %#02x\n", rec.Opcode2)
	cmd.Printf("modrm:       %#02x (mod=%d reg=%d rm=%d)\n", rec.ModRM, rec.ModRMMod, rec.ModRMReg, rec.ModRMRM)
	cmd.Printf("sib:         %#02x (scale=%d index=%d base=%d)\n", rec.SIB, rec.SIBScale, rec.SIBIndex, rec.SIBBase)
	cmd.Printf("displacement: size=%d value=%#x\n", rec.DisplacementSize, rec.Displacement)
	cmd.Printf("immediate:   size=%d value=%#x\n", rec.ImmediateSize, rec.Immediate)
	cmd.Printf("flags:       %#x\n", uint32(rec.Flags))
}

func formatRecordGo(rec decoder.Record) string {
	return fmt.Sprintf("%#v", rec)
}
