package main

import (
	"bufio"
	"io/ioutil"
	"os"

	"github.com/grailbio/base/log"
	"github.com/openmr-re/mrvault/encoding/mrform"
	"github.com/openmr-re/mrvault/encoding/mrform/charset"
	"github.com/openmr-re/mrvault/internal/fixturedump"
	"github.com/pkg/errors"
)

type dumpFlags struct {
	offsets   *bool
	charset   *bool
	dumpItems *string
	gzip      *bool
}

// dump prints one line per item in path to stdout (spec.md §4.5), the Go
// equivalent of original_source/dump8.c.
func dump(flags dumpFlags, path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	opts := mrform.PrintOptions{Offsets: *flags.offsets}
	if *flags.charset {
		opts.Charset = charset.Default{}
	}

	var dumper *fixturedump.Dumper
	if *flags.dumpItems != "" {
		if err := os.MkdirAll(*flags.dumpItems, 0755); err != nil {
			return errors.Wrapf(err, "creating %s", *flags.dumpItems)
		}
		dumper = &fixturedump.Dumper{Dir: *flags.dumpItems, Gzip: *flags.gzip}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	if dumper == nil {
		return mrform.ParseAndPrint(w, data, opts)
	}

	// When -dump-items is set, walk twice: once to dump raw payloads (a
	// side effect Walk's Visitor supports directly), once through
	// ParseAndPrint for the human-readable listing. Dumping first means a
	// malformed item still leaves behind every fixture seen before it.
	dumpErr := mrform.Walk(data, mrform.VisitorFunc(func(hdr mrform.ItemHeader, payload []byte) error {
		return dumper.Dump(payload)
	}))
	if dumpErr != nil {
		log.Error.Printf("dump-items: %v", dumpErr)
	}
	log.Printf("wrote %d item fixtures to %s", dumper.Count(), *flags.dumpItems)
	return mrform.ParseAndPrint(w, data, opts)
}
