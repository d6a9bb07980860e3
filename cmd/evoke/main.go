// Evoke - an OKLCH theme family generator
//
// Evoke derives editor theme variants from a single base palette and
// registers them in the extension manifest.
package main

import (
	"github.com/jmylchreest/evoke/internal/cli"
)

func main() {
	cli.Execute()
}
