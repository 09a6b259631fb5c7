package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/forestrie/go-codepointtrie/cptrie"
)

const genBytesPerLine = 16

type genParams struct {
	input   string
	output  string
	pkg     string
	name    string
	command string
}

// valueTypeFor returns the narrowest Go type able to hold values of width w.
func valueTypeFor(w cptrie.ValueWidth) string {
	return fmt.Sprintf("uint%d", w.Bits())
}

func emitByteArray(w io.Writer, name string, data []byte) {
	fmt.Fprintf(w, "var %s = [...]byte{\n", name)
	for i, v := range data {
		if i%genBytesPerLine == 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprintf(w, "0x%02x,", v)
		if i%genBytesPerLine == genBytesPerLine-1 || i+1 == len(data) {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
}

// generate writes formatted Go source that embeds t and exposes it as a
// lazily loaded package level function named p.name.
func generate(w io.Writer, t *cptrie.Trie[uint32], p genParams) error {
	if p.pkg == "" || p.name == "" {
		return fmt.Errorf("gen: package and name are required")
	}
	dataName := strings.ToLower(p.name[:1]) + p.name[1:] + "Data"
	vt := valueTypeFor(t.Width())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %q; DO NOT EDIT.\n\n", p.command)
	fmt.Fprintf(&buf, "package %s\n\n", p.pkg)
	fmt.Fprintln(&buf, "import (")
	fmt.Fprintln(&buf, "\t\"sync\"")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "\t\"github.com/forestrie/go-codepointtrie/cptrie\"")
	fmt.Fprintln(&buf, ")")
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "// %s returns the embedded trie: %s.\n", p.name, t)
	fmt.Fprintf(&buf, "var %s = sync.OnceValue(func() *cptrie.Trie[%s] {\n", p.name, vt)
	fmt.Fprintf(&buf, "\tt, err := cptrie.Load[%s](%s[:])\n", vt, dataName)
	fmt.Fprintln(&buf, "\tif err != nil {")
	fmt.Fprintln(&buf, "\t\tpanic(err)")
	fmt.Fprintln(&buf, "\t}")
	fmt.Fprintln(&buf, "\treturn t")
	fmt.Fprintln(&buf, "})")
	fmt.Fprintln(&buf)

	emitByteArray(&buf, dataName, t.Bytes())

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("gen: formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
