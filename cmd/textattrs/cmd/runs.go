package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/go-drift/textattrs/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "runs",
		Short: "Show the run decomposition of a line",
		Long: `Runs builds an attribute list over a line of text from start:end:preset
span arguments, then prints the maximal uniform runs a shaper would
consume. Overlapping spans overwrite earlier ones, last write wins.`,
		Usage: "textattrs runs <theme.yaml> <text> [start:end:preset ...]",
		Run:   runRuns,
	})
}

func runRuns(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("runs expects a theme file and a line of text")
	}

	th, err := theme.LoadFile(args[0])
	if err != nil {
		return err
	}
	text := args[1]

	list := th.NewList()
	for _, spec := range args[2:] {
		start, end, name, err := parseSpanSpec(spec)
		if err != nil {
			return err
		}
		preset, ok := th.Preset(name)
		if !ok {
			return fmt.Errorf("span %q: no preset %q in theme", spec, name)
		}
		list.AddSpan(start, end, preset)
	}

	for _, run := range list.Runs(len(text)) {
		segment := text[run.Range.Start:run.Range.End]
		if run.Attrs.HasColor {
			c := run.Attrs.Color
			segment = color.RGB(int(c.R()), int(c.G()), int(c.B())).Sprint(segment)
		}
		fmt.Printf("%-10s %s\n", run.Range, segment)
	}
	return nil
}

// parseSpanSpec splits a start:end:preset argument.
func parseSpanSpec(spec string) (start, end int, name string, err error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return 0, 0, "", fmt.Errorf("bad span %q: expected start:end:preset", spec)
	}
	start, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, "", fmt.Errorf("bad span %q: %w", spec, err)
	}
	end, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, "", fmt.Errorf("bad span %q: %w", spec, err)
	}
	if start < 0 || end < start {
		return 0, 0, "", fmt.Errorf("bad span %q: need 0 <= start <= end", spec)
	}
	return start, end, parts[2], nil
}
