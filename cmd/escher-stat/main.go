// The escher-stat command displays stats for Escher record streams.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/edsrzf/mmap-go"
	"github.com/goinggo/workpool"
	"github.com/officefmt/escher"
	"github.com/officefmt/escher/ddf"
	"github.com/officefmt/escher/errors"
)

const usage = `usage: escher-stat [FLAGS] FILE...

Reads each FILE as an Escher record stream, and writes to stdout statistics for
the files as a JSON array, in the order the files were given.

If FILE is "-", then stdin is used. Files are decoded concurrently. Errors that
prevent a file from being opened are written to stderr.

FLAGS:
`

type PropLen struct {
	Record   string
	Property string
	Type     string
	Length   int
}

func (p PropLen) String() string {
	return fmt.Sprintf("%s.%s:%s(%d)", p.Record, p.Property, p.Type, p.Length)
}

type PropLenCount map[PropLen]int

func (p PropLenCount) MarshalJSON() ([]byte, error) {
	list := []PropLen{}
	for k := range p {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Length == list[j].Length {
			return list[i].String() < list[j].String()
		}
		return list[i].Length > list[j].Length
	})
	if len(list) > 20 {
		list = list[:20]
	}
	return json.Marshal(list)
}

type Stats struct {
	File string

	// Size of the input in bytes.
	Size int

	// Number of records overall, including embedded pictures.
	RecordCount int

	// Deepest nesting of containers.
	MaxDepth int

	// Number of properties overall.
	PropertyCount int

	// Number of records per name.
	RecordNameCount map[string]int

	// Number of properties per name.
	PropertyNameCount map[string]int

	// Number of pictures per type.
	PictureTypeCount map[string]int `json:",omitempty"`

	// Bytes declared by containers but missing from the input.
	TruncatedBytes int `json:",omitempty"`

	LargestProperties PropLenCount `json:",omitempty"`

	Warnings []string `json:",omitempty"`
	Error    string   `json:",omitempty"`
}

const Okay = 0
const (
	Exit = 1 << iota
	SkipProperties
	SkipChildren
)

// walk visits each record, then each property of the record, then the
// children of the record. For records, property is nil.
func walk(recs []escher.Record, depth int, cb func(rec escher.Record, depth int, property escher.Property) int) (ok bool) {
	for _, rec := range recs {
		status := cb(rec, depth, nil)
		if status&Exit != 0 {
			return false
		}
		if opt, ok := rec.(*escher.Opt); ok && status&SkipProperties == 0 {
			for _, property := range opt.Properties {
				status := cb(rec, depth, property)
				if status&Exit != 0 {
					return false
				}
				if status&SkipProperties != 0 {
					break
				}
			}
		}
		if status&SkipChildren != 0 {
			continue
		}
		var children []escher.Record
		switch r := rec.(type) {
		case escher.Parent:
			children = r.ChildRecords()
		case *escher.BSE:
			if r.Blip != nil {
				children = []escher.Record{r.Blip}
			}
		}
		if ok := walk(children, depth+1, cb); !ok {
			return false
		}
	}
	return true
}

func (s *Stats) Fill(recs []escher.Record) {
	s.RecordCount = 0
	s.MaxDepth = 0
	s.TruncatedBytes = 0
	s.RecordNameCount = map[string]int{}
	s.PictureTypeCount = map[string]int{}
	walk(recs, 0, func(rec escher.Record, depth int, property escher.Property) int {
		s.RecordCount++
		s.RecordNameCount[rec.Name()]++
		if _, ok := rec.(escher.Parent); ok && depth+1 > s.MaxDepth {
			s.MaxDepth = depth + 1
		}
		switch r := rec.(type) {
		case *escher.Container:
			s.TruncatedBytes += r.TruncatedBytes
		case *escher.BSE:
			s.PictureTypeCount[escher.BlipTypeName(r.BlipTypeWin32)]++
		}
		return SkipProperties
	})

	s.PropertyCount = 0
	s.PropertyNameCount = map[string]int{}
	walk(recs, 0, func(rec escher.Record, depth int, property escher.Property) int {
		if property == nil {
			return Okay
		}
		s.PropertyCount++
		s.PropertyNameCount[property.PropID().Name()]++
		return Okay
	})

	s.LargestProperties = PropLenCount{}
	walk(recs, 0, func(rec escher.Record, depth int, property escher.Property) int {
		if property == nil {
			return Okay
		}
		var n int
		var typ string
		switch p := property.(type) {
		case *escher.ComplexProperty:
			n, typ = len(p.Data), "Complex"
		case *escher.ArrayProperty:
			n, typ = len(p.Data), "Array"
		default:
			return Okay
		}
		s.LargestProperties[PropLen{
			Record:   rec.Name(),
			Property: property.PropID().Name(),
			Type:     typ,
			Length:   n}]++
		return Okay
	})
}

// statWork decodes one file within the work pool.
type statWork struct {
	stats   *Stats
	decoder ddf.Decoder
	wg      *sync.WaitGroup
}

func (w *statWork) DoWork(int) {
	defer w.wg.Done()
	data, release, err := readInput(w.stats.File)
	if err != nil {
		w.stats.Error = fmt.Errorf("open input: %w", err).Error()
		fmt.Fprintln(os.Stderr, fmt.Errorf("%s: %w", w.stats.File, err))
		return
	}
	defer release()
	w.stats.Size = len(data)

	recs, warn, err := w.decoder.Decode(data)
	if warn != nil {
		if errs, ok := warn.(errors.Errors); ok {
			for _, e := range errs {
				w.stats.Warnings = append(w.stats.Warnings, e.Error())
			}
		} else {
			w.stats.Warnings = append(w.stats.Warnings, warn.Error())
		}
	}
	if err != nil {
		w.stats.Error = err.Error()
	}
	w.stats.Fill(recs)
}

// readInput returns the content of the file at path. Regular files are
// mapped into memory; the returned function releases the mapping.
func readInput(path string) (data []byte, release func() error, err error) {
	if path == "-" {
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
	jobs := flag.Int("j", runtime.NumCPU(), "Number of files to decode concurrently.")
	depth := flag.Int("depth", ddf.DefaultMaxDepth, "Maximum nesting depth of containers.")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *jobs < 1 {
		*jobs = 1
	}

	stats := make([]*Stats, len(files))
	pool := workpool.New(*jobs, int32(len(files)))
	var wg sync.WaitGroup
	for i, file := range files {
		stats[i] = &Stats{File: file}
		wg.Add(1)
		work := &statWork{stats: stats[i], decoder: ddf.Decoder{MaxDepth: *depth}, wg: &wg}
		if err := pool.PostWork("main", work); err != nil {
			stats[i].Error = fmt.Errorf("queue: %w", err).Error()
			wg.Done()
		}
	}
	wg.Wait()
	pool.Shutdown("main")

	je := json.NewEncoder(os.Stdout)
	je.SetEscapeHTML(false)
	je.SetIndent("", "\t")
	if err := je.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
	}
}
