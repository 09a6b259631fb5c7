package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/forestrie/go-codepointtrie/cptrie"
)

// assignment is one line of a range file.
type assignment struct {
	start uint32
	end   uint32
	value uint32
}

// parseCodePoint parses a hex code point, optionally written U+XXXX or
// 0xXXXX.
func parseCodePoint(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s = rest
			break
		}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func parseRange(field string) (uint32, uint32, error) {
	lo, hi, isRange := strings.Cut(field, "..")
	start, err := parseCodePoint(lo)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return start, start, nil
	}
	end, err := parseCodePoint(hi)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseRangeFile reads assignments in the same shape as the UCD data files:
//
//	# comment
//	0030..0039 ; 1
//	00B2       ; 0x2
//
// Code points are hex. Values are decimal unless prefixed with 0x.
func parseRangeFile(r io.Reader) ([]assignment, error) {
	var out []assignment
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rangeField, valueField, ok := strings.Cut(line, ";")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ';' in %q", lineNo, line)
		}
		start, end, err := parseRange(strings.TrimSpace(rangeField))
		if err != nil {
			return nil, fmt.Errorf("line %d: range %q: %w", lineNo, rangeField, err)
		}
		value, err := strconv.ParseUint(strings.TrimSpace(valueField), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: value %q: %w", lineNo, valueField, err)
		}
		out = append(out, assignment{start: start, end: end, value: uint32(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// writeRange writes r in the format parseRangeFile reads.
func writeRange[V cptrie.Value](w io.Writer, r cptrie.Range[V]) error {
	var err error
	if r.Start == r.End {
		_, err = fmt.Fprintf(w, "%04X       ; %d\n", r.Start, r.Value)
	} else {
		_, err = fmt.Fprintf(w, "%04X..%04X ; %d\n", r.Start, r.End, r.Value)
	}
	return err
}
