// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

var (
	// fatih/color disables itself when the output is not a TTY.
	successColor = color.New(color.FgGreen, color.Bold)
	labelColor   = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printSuccess prints a success message with a checkmark.
func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = successColor.Fprintf(w, "✓ "+format+"\n", args...)
}

// printGroups prints delivery groups in label order.
func printGroups(w io.Writer, groups map[string][]string) {
	labels := lo.Keys(groups)
	slices.Sort(labels)
	for _, label := range labels {
		_, _ = labelColor.Fprintf(w, "%s", label)
		_, _ = dimColor.Fprintf(w, " (%d)\n", len(groups[label]))
		for _, p := range groups[label] {
			_, _ = fmt.Fprintf(w, "  - %s\n", p)
		}
	}
}
