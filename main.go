// Command i80 executes Intel 8080 programs on a small emulated machine.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/mkb/i80/machine"
)

func main() {
	log.SetPrefix("i80: ")
	log.SetFlags(0)

	var (
		cliFlag   = flag.Bool("cli", false, "disable GUI features")
		devFlag   = flag.Bool("dev", false, "enable developer mode (reload the program when it changes)")
		debugFlag = flag.Bool("debug", false, "enable debugger (implies -dev)")
		orgFlag   = flag.Uint("org", 0x100, "load `address` for raw binary programs")
		symFlag   = flag.String("sym", "", "read symbols from `file` (default program file plus .sym)")

		cpuProfileFlag = flag.String("cpu_profile", "", "write CPU profile to `file`")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-cli] <program.hex | program.bin>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [-cli] <-dev | -debug> <program.hex>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}
	if *orgFlag > 0xffff {
		log.Fatalf("bad org %#x: must fit in 16 bits", *orgFlag)
	}

	if *devFlag || *debugFlag {
		err := devMode(devConfig{
			gui:   !*cliFlag,
			debug: *debugFlag,
			file:  flag.Arg(0),
			org:   uint16(*orgFlag),
			sym:   *symFlag,
		})
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	var cpuProfile io.Closer
	if prof := *cpuProfileFlag; prof != "" {
		f, err := os.Create(prof)
		if err != nil {
			log.Fatalf("creating CPU profile file: %v", err)
		}
		pprof.StartCPUProfile(f)
		cpuProfile = f
	}

	code, err := run(flag.Arg(0), uint16(*orgFlag), !*cliFlag)

	if f := cpuProfile; f != nil {
		pprof.StopCPUProfile()
		f.Close()
	}

	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func run(file string, org uint16, guiEnabled bool) (int, error) {
	m, err := loadMachine(file, org)
	if err != nil {
		return 0, err
	}
	r := machine.NewRunner(guiEnabled, false, nil)
	return r.Run(m), nil
}

// loadMachine returns a fresh machine with the program loaded.
// Intel HEX files carry their own addresses and start at zero; raw
// binaries are loaded and started at org.
func loadMachine(file string, org uint16) (*machine.Machine, error) {
	m := machine.New()
	if filepath.Ext(file) == ".hex" {
		if err := m.LoadHex(file); err != nil {
			return nil, err
		}
		return m, nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if len(b) > 0x10000-int(org) {
		return nil, fmt.Errorf("%s: %d bytes does not fit at %#x", file, len(b), org)
	}
	m.LoadBin(org, b)
	return m, nil
}
