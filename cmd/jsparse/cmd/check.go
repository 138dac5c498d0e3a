package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t14raptor/jsparse/generator"
	"github.com/t14raptor/jsparse/internal/source"
	"github.com/t14raptor/jsparse/parser/scanner"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check files for syntax errors",
	Long: `Parses each file and reports the first syntax error of every file as
file:line: message. Exits with status 1 when any file has an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "List the tokens of a file",
	Long: `Prints one token per line as line, kind and source text. A '/' after a
token that can end an operand is taken as division.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Print a file as the parser understood it",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(tokensCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if _, err := parseFile(path); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), err)
			failed++
			continue
		}
		logger.Debug("File is valid", "file", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files have errors", failed, len(args))
	}
	return nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	prog, err := parseFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), generator.Generate(prog))
	return nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := source.Read(args[0])
	if err != nil {
		return err
	}
	tokens, err := scanner.Tokenize(src, args[0], 1)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", tok.Line, tok.Kind, src[tok.Idx0:tok.Idx1])
	}
	return nil
}
