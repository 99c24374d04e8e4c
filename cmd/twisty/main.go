// Twisty - CLI for inspecting the structural model of a 3x3x3 twisty cube.
package main

import (
	"github.com/twistyworks/twisty/internal/cli"
)

func main() {
	cli.Execute()
}
