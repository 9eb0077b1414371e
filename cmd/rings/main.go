// Command rings assembles and runs a Rings source file.
//
// The process exit status mirrors the program's HLT code; assembly and
// runtime failures exit 1, usage errors exit 64.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/marekmiklenda/rings/asm"
	"github.com/marekmiklenda/rings/device"
	"github.com/marekmiklenda/rings/machine"
)

// hexWriter formats each output byte as a hex line, for verbose mode.
type hexWriter struct {
	w io.Writer
}

func (h hexWriter) Write(p []byte) (n int, err error) {
	for _, b := range p {
		_, err = fmt.Fprintf(h.w, "%X\n", b)
		if err != nil {
			return
		}
		n++
	}

	return
}

// parseBreakpoints parses a comma-separated source line list.
func parseBreakpoints(arg string) (lines map[int]bool, err error) {
	if arg == "" {
		return
	}

	lines = make(map[int]bool)
	for _, field := range strings.Split(arg, ",") {
		var line int
		line, err = strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return
		}
		lines[line] = true
	}

	return
}

func main() {
	var noDebug bool
	var verbose bool
	var breakpoints string

	flag.BoolVar(&noDebug, "no-debug", false, "Disable debug symbols; errors report raw offsets")
	flag.BoolVar(&verbose, "v", false, "Verbose mode; stdout/stderr bytes are printed as hex lines")
	flag.StringVar(&breakpoints, "b", "", "Comma-separated source lines to break on")

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(64)
	}

	lines, err := parseBreakpoints(breakpoints)
	if err != nil {
		flag.Usage()
		os.Exit(64)
	}

	file := flag.Arg(0)
	src, err := os.Open(file)
	if err != nil {
		log.Fatalf("%v: %v", file, err)
	}
	defer src.Close()

	assembler := &asm.Assembler{NoDebug: noDebug}
	prog, err := assembler.Assemble(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", file, err)
		os.Exit(1)
	}

	console := &device.Console{}
	if verbose {
		console.Output = hexWriter{w: os.Stdout}
		console.ErrOutput = hexWriter{w: os.Stderr}
	}

	vm := &machine.VM{}
	if len(lines) != 0 {
		symbols := prog.Symbols()
		stdin := bufio.NewReader(os.Stdin)
		vm.Hook = func(offset int, rings []*machine.Ring) {
			line, ok := symbols[offset]
			if !ok || !lines[line] {
				return
			}

			fmt.Printf("Breakpoint on line %d\n", line)
			for i, ring := range rings {
				fmt.Printf("%02X: %v\n", i, ring)
			}
			stdin.ReadString('\n')
		}
	}

	code, err := vm.Run(prog, console)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("\nProcess finished with exit code %d\n", code)
	}
	os.Exit(int(code))
}
