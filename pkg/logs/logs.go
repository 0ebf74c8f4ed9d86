// Package logs configures klog for the s2p command and defines the
// verbosity levels used by the library packages.
//
// Library packages take a logr.Logger and default to logr.Discard(). Only
// identifiers are logged (key ID, URI, request hash, algorithm, key size),
// never key material or passphrases.
package logs

import (
	"flag"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

const (
	// Standard log verbosity levels.
	// Use these instead of integers in s2p code.
	Info  = 0
	Debug = 1
	Trace = 2
)

// visibleFlagNames are the klog flags shown in --help. The rest stay usable
// but hidden.
var visibleFlagNames = map[string]bool{
	"v":       true,
	"vmodule": true,
}

// AddFlags adds the klog flags to fs, with -v renamed to --log-level
func AddFlags(fs *pflag.FlagSet) {
	var gfs flag.FlagSet
	klog.InitFlags(&gfs)

	var tfs pflag.FlagSet
	tfs.AddGoFlagSet(&gfs)
	tfs.VisitAll(func(f *pflag.Flag) {
		if !visibleFlagNames[f.Name] {
			_ = tfs.MarkHidden(f.Name)
		}
		if f.Name == "v" {
			f.Name = "log-level"
			f.Shorthand = "v"
			f.Usage = fmt.Sprintf("%s. 0=Info, 1=Debug, 2=Trace. (default: 0)", f.Usage)
		}
	})
	fs.AddFlagSet(&tfs)
}

// Logger returns the klog backed logger with the given name
func Logger(name string) logr.Logger {
	return klog.Background().WithName(name)
}

// Flush writes any buffered log entries
func Flush() {
	klog.Flush()
}
