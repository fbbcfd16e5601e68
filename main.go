package main

import (
	"fmt"
	"os"

	"github.com/qurvo/go-duolog/duolog"
)

// Demo for the duolog library.
//
// Usage: ./go-duolog [logfile]
// With a logfile argument, lines go to both the file and stderr.
func main() {
	var (
		lg  *duolog.Logger
		err error
	)
	if len(os.Args) > 1 {
		lg, err = duolog.NewDual(os.Args[1], os.Stderr, duolog.DebugLevel)
	} else {
		lg, err = duolog.NewStream(os.Stderr, duolog.DebugLevel)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "duolog: %v\n", err)
		os.Exit(1)
	}
	defer lg.Close()

	lg.SetName("demo")

	lg.Debugf("starting up, pid %d", os.Getpid())
	lg.Infof("hello %s", "world")
	lg.Warningf("disk usage at %d%%", 91)
	lg.Errorf("dial %s: %v", "db:5432", "connection refused")
	lg.Criticalf("out of file descriptors")

	// Raise the threshold at runtime; the debug line below is suppressed.
	lg.SetLevel(duolog.WarningLevel)
	lg.Debugf("this line is filtered out")
	lg.Warningf("still visible at the new threshold")

	// The package-level Default logger writes to stderr at InfoLevel.
	duolog.Infof("done")
}
