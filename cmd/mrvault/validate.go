package main

import (
	"fmt"
	"io/ioutil"

	"github.com/grailbio/base/log"
	"github.com/openmr-re/mrvault/encoding/mrform"
	"github.com/pkg/errors"
)

type validateFlags struct {
	quiet *bool
}

// validate walks path's framing layer without invoking any typed-value
// decoder, the Go equivalent of original_source/dump3.c's bare
// structural walker: it reports group/item counts and stops at the
// first format error. Every header is still checked against the
// dictionary, so an unknown (group, key) stops the walk.
func validate(flags validateFlags, path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	var items, lastGroup int
	groupItems := map[int]int{}
	walkErr := mrform.Walk(data, mrform.VisitorFunc(func(hdr mrform.ItemHeader, payload []byte) error {
		items++
		groupItems[hdr.Group]++
		lastGroup = hdr.Group
		return nil
	}))

	if !*flags.quiet {
		for g := 1; g <= lastGroup; g++ {
			fmt.Printf("group %d: %d items\n", g, groupItems[g])
		}
		fmt.Printf("%d groups, %d items total\n", lastGroup, items)
	}

	if walkErr != nil {
		log.Error.Printf("validate %s: %v", path, walkErr)
		return errors.Wrapf(walkErr, "validating %s", path)
	}
	return nil
}
