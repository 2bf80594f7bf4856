// Package ihex reads Intel HEX record files into a flat memory image.
//
// Every record is treated as a data record: the record type field is
// parsed but not interpreted, and checksums are parsed but not
// verified. Malformed hex digits decode as zero. The only reported
// failure is being unable to read the source.
package ihex

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Record is one data run decoded from a HEX file: Data belongs at
// consecutive addresses starting at Addr.
type Record struct {
	Addr uint16
	Data []byte
}

// Read decodes all records from r. Records that share a starting
// address are merged into one record, their data concatenated in
// parse order. The result is sorted by address.
func Read(r io.Reader) ([]Record, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading hex source: %v", err)
	}

	runs := make(map[uint16][]byte)
	var order []uint16
	for i := 0; i < len(src); i++ {
		if src[i] != ':' {
			continue
		}
		i += parseRecord(src[i+1:], runs, &order)
	}

	recs := make([]Record, 0, len(order))
	for _, addr := range order {
		recs = append(recs, Record{Addr: addr, Data: runs[addr]})
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Addr < recs[j].Addr })
	return recs, nil
}

// parseRecord decodes one record from the bytes following a ':'
// marker, accumulating its data run into runs, and returns how many
// bytes it consumed. Fields arrive as hex digit pairs: byte count,
// address (most significant byte first), record type, data, checksum.
func parseRecord(src []byte, runs map[uint16][]byte, order *[]uint16) int {
	var (
		count int
		addr  uint16
		n     int
	)
	for ; n+1 < len(src) && src[n] != ':'; n += 2 {
		if src[n+1] == ':' {
			// Odd trailing digit; the next record starts here.
			n++
			break
		}
		v := hexVal(src[n])<<4 | hexVal(src[n+1])
		switch field := n / 2; field {
		case 0:
			count = int(v)
		case 1:
			addr = uint16(v) << 8
		case 2:
			addr |= uint16(v)
		case 3:
			// Record type, ignored.
		default:
			if field-4 < count {
				if _, ok := runs[addr]; !ok {
					*order = append(*order, addr)
				}
				runs[addr] = append(runs[addr], v)
			}
			// Bytes past the count (the checksum) are ignored.
		}
	}
	return n
}

// hexVal decodes one ASCII hex digit; anything else decodes as zero.
func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return 0
}

// Load reads the named HEX file and writes its records into mem, byte
// i of each record going to Addr+i. Addresses wrap at the end of mem.
func Load(name string, mem []byte) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	for _, rec := range recs {
		for i, b := range rec.Data {
			mem[(int(rec.Addr)+i)%len(mem)] = b
		}
	}
	return nil
}
