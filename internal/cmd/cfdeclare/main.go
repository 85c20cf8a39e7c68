// Command cfdeclare writes the wrapper boilerplate for foreign object types.
//
// Usage:
//
//	cfdeclare -package cf -out zz_generated.cftypes.go String:CFString:bindings.CFStringGetTypeID ...
//
// Each argument is Name:ForeignName:Tag, where Tag is the expression handed
// to the Declare function as the runtime tag source. -base names the
// embedded handle type and -declare the class constructor; both default to
// the package-local Type and Declare. -package defaults to $GOPACKAGE.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hsiuhsiu/cfkit-go/internal/cfdeclare"
)

func main() {
	cfg, out, err := cfdeclare.ParseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fail(err)
	}
	if cfg.Package == "" {
		cfg.Package = os.Getenv("GOPACKAGE")
	}
	src, err := cfdeclare.Generate(cfg)
	if err != nil {
		fail(err)
	}
	if out == "" {
		_, _ = os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
