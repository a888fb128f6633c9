package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/cplot"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, domain string
		with                 [][2]string
		nl, echo             bool
		prec                 int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&domain, "domain", "real", "number domain: real, complex, or big")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", 64, "precision of big calculations in bits")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print expressions in postfix order")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := readsrcs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)

	c := calc{with: with, verb: verb + "\n", echo: echo}
	switch domain {
	case "real":
		run(c, cplot.Real, srcs)
	case "complex":
		run(c, cplot.Complex, srcs)
	case "big":
		run(c, cplot.BigReal(uint(prec)), srcs)
	default:
		log.Fatalf("unknown domain %q", domain)
	}
}

type calc struct {
	with [][2]string
	verb string
	echo bool
}

// run evaluates each expression over dom. Errors in definitions are fatal;
// errors in expressions are printed and skipped.
func run[T any](c calc, dom *cplot.Domain[T], srcs []string) {
	vars := make(map[rune]T, len(c.with))
	for _, d := range c.with {
		nm, vl := d[0], d[1]
		r, n := utf8.DecodeRuneInString(nm)
		if n == 0 || n != len(nm) {
			log.Fatalf("variable name %q must be a single letter", nm)
		}
		v, err := cplot.Eval(vl, dom, vars)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		vars[r] = v
	}

	var p []*cplot.Expr[T]
	for _, src := range srcs {
		a, err := cplot.Parse(src, dom)
		if err != nil {
			log.Fatal(err)
		}
		p = append(p, a)
	}

	for _, a := range p {
		if c.echo {
			fmt.Printf("%v : ", a)
		}
		r, err := a.Eval(vars)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(c.verb, r)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}

// readsrcs reads expressions from r. If lines is true, each non-blank line is
// an expression. Otherwise the whole input is one expression.
func readsrcs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}
