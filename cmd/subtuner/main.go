// Command subtuner optimizes subtitle cue timing: it lengthens cues that
// flash by too fast to read, borrows time from generously-timed neighbors,
// nudges cues earlier so a reader has a beat before a scene cut, and
// repairs whatever the first three passes could not fix cleanly.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
