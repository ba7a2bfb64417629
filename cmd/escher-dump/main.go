// The escher-dump command displays the records of an Escher stream.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/officefmt/escher"
	"github.com/officefmt/escher/ddf"
	"github.com/officefmt/escher/json"
)

const usage = `usage: escher-dump [FLAGS] [INPUT] [OUTPUT]

Reads an Escher record stream from INPUT, and writes to OUTPUT a readable
representation of the records.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.

FLAGS:
`

// readInput returns the content of the file at path. Regular files are
// mapped into memory; the returned function releases the mapping.
func readInput(path string) (data []byte, release func() error, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, func() error { return nil }, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.Size() == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, err
	}
	return m, m.Unmap, nil
}

func main() {
	var output io.Writer = os.Stdout

	offset := flag.Int("offset", 0, "Skip the given number of bytes before decoding.")
	format := flag.String("format", "dump", "Output format: \"dump\", \"json\", or \"raw\" to write the re-encoded stream.")
	depth := flag.Int("depth", ddf.DefaultMaxDepth, "Maximum nesting depth of containers.")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()

	var inputPath string
	if len(args) >= 1 {
		inputPath = args[0]
	}
	data, release, err := readInput(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
		return
	}
	defer func() {
		if err := release(); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("close input: %w", err))
		}
	}()
	if *offset < 0 || *offset > len(data) {
		fmt.Fprintln(os.Stderr, fmt.Errorf("offset %d outside of input (%d bytes)", *offset, len(data)))
		return
	}
	data = data[*offset:]

	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		defer func() {
			err := out.Sync()
			if err != nil {
				fmt.Fprintln(os.Stderr, fmt.Errorf("sync output: %w", err))
				return
			}
		}()
		output = out
	}

	dec := ddf.Decoder{MaxDepth: *depth}
	switch *format {
	case "dump":
		warn, err := dec.Dump(output, data)
		report(warn, err)
	case "json":
		recs, warn, err := dec.Decode(data)
		report(warn, err)
		b, err := json.EncodeIndent(recs, "", "\t")
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("encode json: %w", err))
			return
		}
		if _, err := output.Write(append(b, '\n')); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
		}
	case "raw":
		recs, warn, err := dec.Decode(data)
		report(warn, err)
		if err := encodeRecords(output, recs); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
		}
	default:
		fmt.Fprintln(os.Stderr, fmt.Errorf("unknown format %q", *format))
	}
}

func report(warn, err error) {
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("error: %w", err))
	}
}

func encodeRecords(w io.Writer, recs []escher.Record) error {
	var enc ddf.Encoder
	for _, rec := range recs {
		if _, err := enc.Encode(w, rec); err != nil {
			return err
		}
	}
	return nil
}
