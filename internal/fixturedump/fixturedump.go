// Package fixturedump is an opt-in test-fixture dumping collaborator:
// it writes each item's raw payload to its own side file, the Go
// equivalent of original_source's dump2file/"outNNNN" helper. Unlike
// the original, which used a module-level counter (spec.md §9, "Global
// scratch state"), the counter here lives in a Dumper value the caller
// threads through its own walk explicitly.
package fixturedump

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"

	kgzip "github.com/klauspost/compress/gzip"
)

// Dumper writes successive payloads to numbered files under Dir,
// named out0000, out0001, .... It carries no process-wide state; the
// zero value is ready to use once Dir is set.
type Dumper struct {
	Dir string
	// Gzip compresses each fixture with klauspost/compress's gzip
	// implementation (the same library encoding/bam's .gbai index uses)
	// instead of writing raw bytes.
	Gzip bool

	next int
}

// Dump writes payload to the next numbered fixture file and advances
// the counter.
func (d *Dumper) Dump(payload []byte) error {
	name := fmt.Sprintf("out%04d", d.next)
	d.next++
	if d.Gzip {
		name += ".gz"
	}
	f, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	if !d.Gzip {
		_, err = f.Write(payload)
		return err
	}
	gz, err := kgzip.NewWriterLevel(f, gzip.BestSpeed)
	if err != nil {
		return err
	}
	if _, err := gz.Write(payload); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

// Count reports how many fixtures have been written so far.
func (d *Dumper) Count() int { return d.next }
