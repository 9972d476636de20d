package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/park285/fen-board/internal/board"
	"github.com/park285/fen-board/internal/fen"
	"github.com/park285/fen-board/internal/render"
)

type decodeFlags struct {
	strict   bool
	theme    string
	rotation string
	labels   bool
	packed   bool
	json     bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "fenboard",
		Short:        "Decode FEN piece placements into boards",
		SilenceUsage: true,
	}
	root.AddCommand(newDecodeCmd(), newUnpackCmd())
	return root
}

func newDecodeCmd() *cobra.Command {
	var f decodeFlags
	cmd := &cobra.Command{
		Use:   "decode <fen>",
		Short: "Decode a FEN string and print the board",
		Long:  "Decode the piece-placement field of a FEN string. Fields after the\nfirst are ignored; quote the argument if it contains spaces.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []fen.Option
			if f.strict {
				opts = append(opts, fen.WithStrictRanks())
			}
			b, err := fen.NewDecoder(opts...).Decode(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case f.json:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]string{
					"placement": fen.Encode(b),
					"packed":    board.Pack(b).String(),
				})
			case f.packed:
				_, err := fmt.Fprintln(out, board.Pack(b).String())
				return err
			}
			return printBoard(cmd, b, f)
		},
	}
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject ranks that describe fewer than 8 squares")
	cmd.Flags().StringVar(&f.theme, "theme", "classic", "text theme: classic or modern")
	cmd.Flags().StringVar(&f.rotation, "rotation", "0", "clockwise rotation: 0, 90, 180 or 270")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "print rank and file labels")
	cmd.Flags().BoolVar(&f.packed, "packed", false, "print the packed board as hex")
	cmd.Flags().BoolVar(&f.json, "json", false, "print placement and packed form as JSON")
	return cmd
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <hex>",
		Short: "Print the placement field of a packed board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := board.ParsePackedHex(args[0])
			if err != nil {
				return err
			}
			b, err := board.Unpack(p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fen.Encode(b))
			return err
		},
	}
}

func printBoard(cmd *cobra.Command, b board.ChessBoard, f decodeFlags) error {
	theme, err := render.ParseTheme(f.theme)
	if err != nil {
		return err
	}
	rot, err := render.ParseRotation(f.rotation)
	if err != nil {
		return err
	}
	out, err := render.Text{}.Render(b, render.Options{Theme: theme, Rotation: rot, Labels: f.labels})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
