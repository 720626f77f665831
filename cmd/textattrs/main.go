// Command textattrs inspects theme files and attribute span layouts.
package main

import (
	"os"

	"github.com/go-drift/textattrs/cmd/textattrs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
