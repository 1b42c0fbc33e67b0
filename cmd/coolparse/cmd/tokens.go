package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pattyshack/gt/parseutil"
	"github.com/spf13/cobra"

	"github.com/pattyshack/coolparse/parser/grammar"
	"github.com/pattyshack/coolparse/parser/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>...",
	Short: "Print the token stream of COOL files",
	Long: `Prints one line per token, prefixed by the token's line number.

Examples:
  coolparse tokens hello.cl`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	for _, fileName := range args {
		content, err := os.ReadFile(fileName)
		if err != nil {
			return err
		}

		fmt.Printf("#name \"%s\"\n", fileName)

		lex := lexer.NewLexer(
			parseutil.NewBufferedByteLocationReaderFromSlice(fileName, content),
			nil)
		for {
			token, err := lex.Next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					return fmt.Errorf("%s: %w", fileName, err)
				}
				break
			}

			value, ok := token.(*grammar.TokenValue)
			if !ok {
				fmt.Printf("#%d %s\n", grammar.Line(token), token.Id())
				continue
			}
			fmt.Printf("#%d %s\n", grammar.Line(token), grammar.TokenText(value))
		}
	}

	return nil
}
