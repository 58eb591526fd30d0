// The main package for the materialdb executable.
package main

import (
	"github.com/matforge/materialdb/cmd"
)

// main defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
