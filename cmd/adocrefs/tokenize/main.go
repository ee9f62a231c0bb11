package tokenize

import (
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/go-adoc-refs/pkg/lexer"
)

// NewTokenizeCommand dumps the token stream of an AsciiDoc file, one token
// per line.
func NewTokenizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the token stream of an AsciiDoc file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Errorf("reading %s: %w", args[0], err)
			}
			cmd.Println(lexer.Dump(lexer.Lex(string(data))))
			return nil
		},
	}
	return cmd
}
