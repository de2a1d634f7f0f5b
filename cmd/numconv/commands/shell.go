package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"numconv/internal/app"
	"numconv/internal/domain"
	"numconv/internal/render"
)

const shellHelp = `Type a number and press enter to convert it.
  :base <name>   switch the input base (decimal, binary, octal, hexadecimal)
  :help          show this help
  :quit          leave the shell
`

// shellCmd runs a converter screen over stdin: every line is sanitized for
// the selected base, then converted.
func shellCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive converter, one input per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolveBase(from)
			if err != nil {
				return err
			}
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), app.NewScreen(wire.Numerals, base))
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "initial input base (default from config)")
	return cmd
}

func runShell(in io.Reader, out io.Writer, screen *app.Screen) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintf(out, "[%s] > ", screen.Base)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == ":quit" || line == ":q":
			return nil
		case line == ":help":
			fmt.Fprint(out, shellHelp)
		case strings.HasPrefix(line, ":base"):
			base, err := domain.ParseBase(strings.TrimPrefix(line, ":base"))
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			screen.Select(base)
			screen.Type("")
		case strings.HasPrefix(line, ":"):
			fmt.Fprintf(out, "unknown command %q, try :help\n", line)
		default:
			fmt.Fprintf(out, "input: %s\n", screen.Type(line))
			if err := render.Conversion(out, wire.Output, screen.Convert()); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "[%s] > ", screen.Base)
	}
	return sc.Err()
}
