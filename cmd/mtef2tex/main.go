// Command mtef2tex translates an OLE-wrapped MTEF equation stream read
// from a file into a LaTeX string printed on stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	mtef "github.com/chl19940220/mtef-latex"
)

func main() {
	doMain(os.Stdout, os.Stderr, os.Exit)
}

// doMain is separated out for the purpose of unit testing: exit is called
// instead of os.Exit so a test can recover from it.
func doMain(stdOut, stdErr io.Writer, exit func(int)) {
	flag.CommandLine.SetOutput(stdErr)

	var help bool
	flag.BoolVar(&help, "h", false, "Prints usage.")

	var raw bool
	flag.BoolVar(&raw, "raw", false, "Treat the input file as a bare MTEF body with no OLE prefix.")

	flag.Parse()

	if help || flag.NArg() == 0 {
		printUsage(stdErr)
		exit(0)
		return
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdErr, err)
		exit(1)
		return
	}

	t := mtef.NewTranslator(&mtef.MapCharTable{})

	var out string
	if raw {
		out = t.Translate(data)
	} else {
		out, err = t.Open(data)
		if err != nil {
			fmt.Fprintln(stdErr, err)
			exit(1)
			return
		}
	}

	fmt.Fprintln(stdOut, out)
	exit(0)
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "mtef2tex [-raw] <equation-file>")
	flag.PrintDefaults()
}
