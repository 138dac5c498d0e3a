package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/t14raptor/jsparse/outline"
)

var outlinePlain bool

var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Show the functions and declarations of a file",
	Long: `Prints the outline of a file: its functions and the calls that declare
classes, modules or events, indented by nesting depth.

Examples:
  jsparse outline editor.js
  jsparse outline --plain editor.js`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

var findCmd = &cobra.Command{
	Use:   "find <name> <file>",
	Short: "Print the line of a function",
	Args:  cobra.ExactArgs(2),
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(findCmd)

	outlineCmd.Flags().BoolVar(&outlinePlain, "plain", false, "print without styling")
}

func runOutline(cmd *cobra.Command, args []string) error {
	info, err := extract(args[0])
	if err != nil {
		return err
	}
	if outlinePlain {
		fmt.Fprint(cmd.OutOrStdout(), info.Render(cfg.Patterns))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(args[0]))
	printOutline(cmd.OutOrStdout(), info, cfg.Patterns)
	fmt.Fprintln(cmd.OutOrStdout(), lineStyle.Render(summary(info, cfg.Patterns)))
	return nil
}

// summary counts the outline entries and names their kinds.
func summary(info *outline.Info, patterns []outline.Pattern) string {
	var labels []string
	for _, typ := range info.Types() {
		labels = append(labels, outline.Label(typ, patterns))
	}
	return fmt.Sprintf("%d symbols: %s", len(info.Outline), strings.Join(labels, ", "))
}

func printOutline(w io.Writer, info *outline.Info, patterns []outline.Pattern) {
	for _, sym := range info.Outline {
		if sym.Name == "" {
			continue
		}
		style := declarationStyle
		if sym.Type == outline.FunctionType {
			style = functionStyle
		}
		fmt.Fprintf(w, "%s%s %s %s\n",
			strings.Repeat(" ", sym.Depth),
			style.Render(outline.Label(sym.Type, patterns)+":"),
			sym.Name,
			lineStyle.Render(fmt.Sprintf("(line %d)", sym.Line)))
	}
}

func runFind(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]
	info, err := extract(path)
	if err != nil {
		return err
	}
	fn, ok := info.FindFunction(name)
	if !ok {
		return fmt.Errorf("function %s not found in %s", name, path)
	}
	fmt.Fprintln(cmd.OutOrStdout(), fn.Line)
	return nil
}
