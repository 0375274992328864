// Command shellshot drives a command under a pty, captures its terminal
// output, and renders a screenshot of the final screen to a file or the
// clipboard.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "shellshot:", err)
		os.Exit(1)
	}
}
