package main

import (
	"io/ioutil"

	"github.com/grailbio/base/log"
	"github.com/openmr-re/mrvault/encoding/mrform"
	"github.com/pkg/errors"
)

// scrub rewrites srcPath into destPath with PHI fields redacted, the Go
// equivalent of original_source/dump6.c's mec_mr3_memcpy: slurp, scrub
// into an identically-sized output buffer, write.
func scrub(srcPath, destPath string) error {
	in, err := ioutil.ReadFile(srcPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", srcPath)
	}

	out := make([]byte, len(in))
	if err := mrform.Scrub(in, out); err != nil {
		return errors.Wrapf(err, "scrubbing %s", srcPath)
	}

	if err := ioutil.WriteFile(destPath, out, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", destPath)
	}
	log.Debug.Printf("scrub: wrote %d bytes to %s", len(out), destPath)
	return nil
}
