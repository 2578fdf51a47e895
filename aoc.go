// Package aoc are quick & dirty utilities for solving the Advent of Code
// 2018 puzzles.
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of src,
// keyed by function name. A sample without input reuses the input of the
// previous sample in the same file.
func extractSamples(name string, src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractAllSamples walks every day??.go file of src.
func extractAllSamples(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "day??.go"))
	all := make(map[string]sample)
	for _, name := range names {
		samples, err := extractSamples(name, MustGet(fs.ReadFile(src, name)))
		if err != nil {
			log.Fatal(err)
		}
		maps.Copy(all, samples)
	}
	return all
}

// Puzzle is the state shared with the solver methods: which day is running,
// whether the sample is being solved, and where the input comes from.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	inputs  fs.FS
	solver  partSolver
	samples map[string]sample
}

// Input returns the puzzle input, or the sample input in sample mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		s, _ := p.Sample()
		return []byte(s.input)
	}
	return p.realInput()
}

func (p *Puzzle) realInput() []byte {
	if p.inputs != nil {
		if b, err := fs.ReadFile(p.inputs, fmt.Sprintf("input/%d.txt", p.day.day)); err == nil {
			return b
		}
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// Text returns the input with surrounding whitespace trimmed.
func (p *Puzzle) Text() string {
	return strings.TrimSpace(string(p.Input()))
}

// Lines returns the input lines trimmed of surrounding whitespace, skipping
// blank lines.
func (p *Puzzle) Lines() []string {
	return Lines(string(p.Input()))
}

// RawLines returns the input lines with only trailing whitespace removed.
// Trailing blank lines are dropped; leading indentation is preserved.
func (p *Puzzle) RawLines() []string {
	return RawLines(string(p.Input()))
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

// Sample returns the sample for the running part, if it has one.
func (p *Puzzle) Sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok
}

// Lines splits s into lines trimmed of surrounding whitespace, skipping
// blank ones.
func Lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// RawLines splits s into lines with trailing whitespace removed and trailing
// blank lines dropped.
func RawLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i)
		if _, ok := m.Interface().(func() any); !ok {
			return nil, fmt.Errorf("method %s has type %v; want func() any", mn, m.Type())
		}
		d, part := Int(matches[1]), matches[2]
		byDays[d] = append(byDays[d], partSolver{
			// Bind at call time so the Puzzle field set by runDay is visible.
			fn:   func() any { return m.Call(nil)[0].Interface() },
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

// errSampleMismatch is returned by runDay when a sample answer is wrong.
var errSampleMismatch = errors.New("sample mismatch")

func runDay(w io.Writer, slvr any, p *Puzzle) error {
	fmt.Fprintln(w, "Running day", p.day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range p.day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			var sample sample
			if sm {
				var ok bool
				if sample, ok = p.Sample(); !ok {
					continue
				}
			} else {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(w, "Part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return fmt.Errorf("day %d part %s: %w", p.day.day, ps.Part, errSampleMismatch)
				}
				fmt.Fprintf(w, "Part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(w, "Part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// Run runs every registered day of slvr, or only the one selected with
// -day. src holds the solver sources (for samples) and, optionally, the
// embedded puzzle inputs under input/<day>.txt.
func Run(year int, src fs.FS, slvr any) {
	samples := extractAllSamples(src)
	days, err := extractMethods(slvr)
	if err != nil {
		log.Fatal(err)
	}
	initFlags()

	newPuzzle := func(d day) *Puzzle {
		return &Puzzle{
			year:    year,
			day:     d,
			inputs:  src,
			samples: samples,
		}
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		if err := runDay(os.Stdout, slvr, newPuzzle(day)); err != nil {
			log.Fatal(err)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := runDay(os.Stdout, slvr, newPuzzle(days[d])); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}
}

// CheckSamples solves the sample of every part of slvr that has one and
// returns the wrong answers as a joined error.
func CheckSamples(src fs.FS, slvr any) error {
	samples := extractAllSamples(src)
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, d := range dayNums {
		p := &Puzzle{day: days[d], samples: samples, SampleMode: true}
		reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
		for _, ps := range p.day.parts {
			p.solver = ps
			s, ok := p.Sample()
			if !ok {
				continue
			}
			if got := fmt.Sprint(ps.fn()); got != s.want {
				errs = append(errs, fmt.Errorf("%s sample: got %v, want %v", ps.Name, got, s.want))
			}
		}
	}
	return errors.Join(errs...)
}

var session = sync.OnceValue[string](func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := doRequest(request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
