package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

type symbols []symbol

func (s symbols) forAddr(addr uint16) (ss []symbol) {
	i := sort.Search(len(s), func(i int) bool { return s[i].addr >= addr })
	for ; i < len(s); i++ {
		if s[i].addr == addr {
			ss = append(ss, s[i])
		}
	}
	return ss
}

func (s symbols) withLabelPrefix(prefix string) (ss []symbol) {
	for _, sym := range s {
		if strings.HasPrefix(sym.label, prefix) {
			ss = append(ss, sym)
		}
	}
	return ss
}

// resolve maps a label or a hex address literal to an address.
func (s symbols) resolve(arg string) (symbol, bool) {
	for _, sym := range s {
		if sym.label == arg {
			return sym, true
		}
	}
	if n, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 16); err == nil {
		return symbol{addr: uint16(n), label: arg}, true
	}
	return symbol{}, false
}

type symbol struct {
	addr  uint16
	label string
}

func (s symbol) String() string { return fmt.Sprintf("%s (%.4x)", s.label, s.addr) }

// parseSymbols reads an assembler symbol table: one symbol per line,
// a label and a hex address separated by whitespace. Blank lines and
// lines starting with ; are skipped.
func parseSymbols(symFile string) (symbols, error) {
	f, err := os.Open(symFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ss symbols
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: invalid symbol %q", symFile, n, line)
		}
		addr, err := strconv.ParseUint(strings.TrimSuffix(fields[1], "H"), 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid address %q", symFile, n, fields[1])
		}
		ss = append(ss, symbol{addr: uint16(addr), label: fields[0]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].addr < ss[j].addr
	})
	return ss, nil
}
