// mrvault is a reverse-engineering workbench for the proprietary MR
// container format described by encoding/mrform: dump, scrub, and
// validate subcommands over a single binary.
package main

import "github.com/openmr-re/mrvault/cmd/mrvault/cmd"

func main() {
	cmd.Run()
}
