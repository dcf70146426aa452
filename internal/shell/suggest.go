package shell

import (
	"fmt"
	"io"
	"strings"
)

// Suggest prints test ideas for pattern, keyed off the operators it
// uses.
func Suggest(w io.Writer, pattern string) {
	fmt.Fprintf(w, "Suggested test cases for: %s\n", pattern)
	fmt.Fprintln(w, `- Empty string: ""`)
	if strings.Contains(pattern, "*") {
		fmt.Fprintln(w, "- Zero occurrences of the starred part")
		fmt.Fprintln(w, "- Many occurrences of the starred part")
	}
	if strings.Contains(pattern, "+") {
		fmt.Fprintln(w, "- Exactly one occurrence of the repeated part")
		fmt.Fprintln(w, "- Many occurrences of the repeated part")
	}
	if strings.Contains(pattern, "|") {
		fmt.Fprintln(w, "- Each alternative on its own")
	}
	if strings.Contains(pattern, "?") {
		fmt.Fprintln(w, "- With and without the optional part")
	}
	fmt.Fprintln(w, "- A character outside the alphabet")
	fmt.Fprintln(w, "- A longer string that should not match")
}
