package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/forestrie/go-codepointtrie/cptrie"
)

type buildParams struct {
	input        string
	output       string
	trieType     string
	width        string
	defaultValue uint32
	errorValue   uint32
}

func (p *buildParams) options() ([]cptrie.BuildOption, error) {
	var opts []cptrie.BuildOption
	switch p.trieType {
	case "auto":
	case "fast":
		opts = append(opts, cptrie.WithType(cptrie.TypeFast))
	case "small":
		opts = append(opts, cptrie.WithType(cptrie.TypeSmall))
	default:
		return nil, fmt.Errorf("unknown trie type %q", p.trieType)
	}
	switch p.width {
	case "auto":
	case "8":
		opts = append(opts, cptrie.WithWidth(cptrie.Width8))
	case "16":
		opts = append(opts, cptrie.WithWidth(cptrie.Width16))
	case "32":
		opts = append(opts, cptrie.WithWidth(cptrie.Width32))
	default:
		return nil, fmt.Errorf("unknown value width %q", p.width)
	}
	return opts, nil
}

// buildTrie builds a trie from the assignments in the range file p.input.
func buildTrie(log logger.Logger, p *buildParams) (*cptrie.Trie[uint32], error) {
	opts, err := p.options()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	as, err := parseRangeFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.input, err)
	}

	b := cptrie.NewBuilder(p.defaultValue, p.errorValue)
	for _, a := range as {
		if err := b.SetRange(a.start, a.end, a.value); err != nil {
			return nil, fmt.Errorf("%s: %w", p.input, err)
		}
	}
	t, err := b.Build(opts...)
	if err != nil {
		return nil, err
	}
	log.Infof("built %s from %d assignments: %s", p.input, len(as), t.Stats())
	return t, nil
}

func runBuild(log logger.Logger, p *buildParams) error {
	t, err := buildTrie(log, p)
	if err != nil {
		return err
	}
	return os.WriteFile(p.output, t.Bytes(), 0o644)
}

// readTrie loads a serialized trie of any width.
func readTrie(path string) (*cptrie.Trie[uint32], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := cptrie.Load[uint32](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func runInspect(out io.Writer, files []string) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{
		"File", "Type", "Width", "HighStart", "HighValue", "ErrorValue", "Index", "Data", "Blocks", "Size", "Dense",
	})
	for _, path := range files {
		t, err := readTrie(path)
		if err != nil {
			return err
		}
		st := t.Stats()
		table.Append([]string{
			path,
			st.Type.String(),
			st.Width.String(),
			fmt.Sprintf("U+%04X", st.HighStart),
			strconv.FormatUint(uint64(t.HighValue()), 10),
			strconv.FormatUint(uint64(t.ErrorValue()), 10),
			strconv.FormatUint(uint64(st.IndexLen), 10),
			strconv.FormatUint(uint64(st.DataLen), 10),
			strconv.Itoa(st.DataBlocks),
			humanize.Bytes(st.Bytes),
			fmt.Sprintf("%.2f%%", 100*st.Ratio()),
		})
	}
	table.Render()
	return nil
}

// runRanges writes the ranges of the trie at path. A non empty value
// restricts the output to ranges with that value.
func runRanges(out io.Writer, path string, value string) error {
	t, err := readTrie(path)
	if err != nil {
		return err
	}
	ranges := t.Ranges()
	if value != "" {
		v, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return fmt.Errorf("value %q: %w", value, err)
		}
		ranges = t.RangesForValue(uint32(v))
	}
	for r := range ranges {
		if err := writeRange(out, r); err != nil {
			return err
		}
	}
	return nil
}

func runGet(out io.Writer, path string, points []string) error {
	t, err := readTrie(path)
	if err != nil {
		return err
	}
	for _, s := range points {
		c, err := parseCodePoint(s)
		if err != nil {
			return fmt.Errorf("code point %q: %w", s, err)
		}
		if _, err := fmt.Fprintf(out, "U+%04X ; %d\n", c, t.GetU32(rune(c))); err != nil {
			return err
		}
	}
	return nil
}

func runGen(out io.Writer, p genParams) error {
	t, err := readTrie(p.input)
	if err != nil {
		return err
	}
	if p.output == "" {
		return generate(out, t, p)
	}
	f, err := os.Create(p.output)
	if err != nil {
		return err
	}
	if err := generate(f, t, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
