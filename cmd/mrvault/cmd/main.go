// Package cmd wires mrvault's subcommands with v.io/x/lib/cmdline, the
// same CLI framework grailbio/bio's bio-pamtool uses.
package cmd

import (
	"fmt"
	"log"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdDump() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "dump",
		Short:    "Print every item in an MR container as one line per item",
		ArgsName: "path",
	}
	flags := dumpFlags{
		offsets:   cmd.Flags.Bool("offsets", false, "Prefix each line with the item's byte offset"),
		charset:   cmd.Flags.Bool("charset", true, "Decode SJISString and labeled ISO8859-1 stringlets to UTF-8"),
		dumpItems: cmd.Flags.String("dump-items", "", "If set, also write each item's raw payload as a numbered file under this directory"),
		gzip:      cmd.Flags.Bool("gzip", false, "Gzip-compress files written by -dump-items"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("dump takes one pathname argument, but got %v", argv)
		}
		return dump(flags, argv[0])
	})
	return cmd
}

func newCmdScrub() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "scrub",
		Short:    "Rewrite an MR container with PHI fields redacted, preserving byte length",
		ArgsName: "srcpath destpath",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("scrub takes srcpath destpath, but got %v", argv)
		}
		return scrub(argv[0], argv[1])
	})
	return cmd
}

func newCmdValidate() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "validate",
		Short:    "Walk an MR container and report structural errors without printing its contents",
		ArgsName: "path",
	}
	flags := validateFlags{
		quiet: cmd.Flags.Bool("quiet", false, "Suppress the per-group summary; report only errors"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("validate takes one pathname argument, but got %v", argv)
		}
		return validate(flags, argv[0])
	})
	return cmd
}

// Run is mrvault's entry point.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "mrvault",
			Short:    "Reverse-engineering workbench for the MR binary container format",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdDump(),
				newCmdScrub(),
				newCmdValidate(),
			},
		})
}
