package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// resolveInput picks the text a command works on: the inline flag value,
// then the named file ("-" is stdin), then piped stdin. An interactive
// terminal on stdin yields "" rather than blocking.
func resolveInput(cmd *cobra.Command, inline string, inlineSet bool, args []string) (string, error) {
	if inlineSet {
		return inline, nil
	}
	if len(args) > 0 && args[0] != "-" {
		return readFile(args[0])
	}
	in := cmd.InOrStdin()
	if len(args) == 0 && isTerminal(in) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a user-supplied CLI argument
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
