// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/lc3asm/asm"
	"github.com/ezrec/lc3asm/control"
	"github.com/ezrec/lc3asm/translate"
)

// openInput opens name for reading, with "-" as stdin.
func openInput(name string) (r io.ReadCloser, err error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// writeOutput writes wt to name, with "-" as stdout.
func writeOutput(name string, wt io.WriterTo) (err error) {
	if name == "-" {
		_, err = wt.WriteTo(os.Stdout)
		return
	}

	ouf, err := os.Create(name)
	if err != nil {
		return
	}

	_, err = wt.WriteTo(ouf)
	if close_err := ouf.Close(); err == nil {
		err = close_err
	}
	return
}

// diagnostics lists the line errors and the read error of an assembly,
// falling back to err when neither is set.
func diagnostics(prog *asm.Program, err error) (errs []error) {
	errs = append(errs, prog.Errors...)
	if prog.ReadErr != nil {
		errs = append(errs, prog.ReadErr)
	}
	if len(errs) == 0 && err != nil {
		errs = append(errs, err)
	}
	return
}

func main() {
	var compile string
	var output string
	var store string
	var words string
	var strict bool
	var workers int
	var lang string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble ('-' for stdin)")
	flag.StringVar(&output, "o", "-", "Machine code output")
	flag.StringVar(&store, "x", "", "Control store .csv file to convert")
	flag.StringVar(&words, "w", "-", "Control word output")
	flag.BoolVar(&strict, "strict", false, "Stop at the first error")
	flag.IntVar(&workers, "j", 1, "Lines to assemble concurrently")
	flag.StringVar(&lang, "lang", "", "Diagnostic language (BCP 47), default from the system locale")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 && len(store) == 0 {
		log.Fatalf("%v: nothing to do, use -c and/or -x", os.Args[0])
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if len(compile) != 0 {
		inf, err := openInput(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		assembler := &asm.Assembler{
			Verbose: verbose,
			Strict:  strict,
			Workers: workers,
		}
		prog, err := assembler.Parse(inf)
		if err != nil {
			errs := diagnostics(prog, err)
			for _, diag := range errs {
				log.Printf("%v: %v", compile, diag)
			}
			log.Fatalf("%v: %d errors", compile, len(errs))
		}

		err = writeOutput(output, prog)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if len(store) != 0 {
		inf, err := openInput(store)
		if err != nil {
			log.Fatalf("%v: %v", store, err)
		}
		defer inf.Close()

		conv := &control.Converter{
			Verbose: verbose,
			Strict:  strict,
		}
		cs, err := conv.Convert(inf)
		if err != nil {
			log.Fatalf("%v: %v", store, err)
		}

		err = writeOutput(words, cs)
		if err != nil {
			log.Fatalf("%v: %v", words, err)
		}
	}
}
