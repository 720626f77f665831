package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/go-drift/textattrs/pkg/attrs"
	"github.com/go-drift/textattrs/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "show",
		Short: "List the presets of a theme file",
		Long: `Show loads a theme file and lists its default attributes and every
preset, with a color swatch where the preset sets a color.`,
		Usage: "textattrs show <theme.yaml>",
		Run:   runShow,
	})
}

func runShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show expects exactly one theme file argument")
	}

	th, err := theme.LoadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("defaults  %s\n", describeAttrs(th.Defaults()))
	for _, name := range th.Names() {
		preset, _ := th.Preset(name)
		fmt.Printf("%-9s %s\n", name, describeAttrs(preset))
	}
	return nil
}

// describeAttrs renders one attribute set as a single line, leading with a
// colored swatch when a color is set.
func describeAttrs(a attrs.Attrs) string {
	swatch := "  "
	hex := "-      "
	if a.HasColor {
		swatch = color.RGB(int(a.Color.R()), int(a.Color.G()), int(a.Color.B())).Sprint("██")
		hex = a.Color.Hex()
	}
	return fmt.Sprintf("%s %s family=%s weight=%s style=%s stretch=%s scaling=%g metadata=%d",
		swatch, hex, a.Family, a.Weight, a.Style, a.Stretch, a.Scaling, a.Metadata)
}
