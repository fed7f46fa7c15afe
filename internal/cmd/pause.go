package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// shouldPause reports whether to wait for Enter before exiting. Only an
// interactive stdin is waited on, so scripts and pipes never block.
func shouldPause(enabled bool, in io.Reader) bool {
	if !enabled {
		return false
	}
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// waitForEnter prompts on out and blocks until a line (or EOF) is read from in.
func waitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Press Enter to quit...")
	bufio.NewReader(in).ReadString('\n')
}
