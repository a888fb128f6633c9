package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/zephyrtronium/cplot"
	"github.com/zephyrtronium/cplot/plot"
)

func main() {
	log.SetFlags(0)
	var (
		opts plot.Options
		out  string
	)
	flag.IntVar(&opts.Width, "w", 800, "image width in pixels")
	flag.IntVar(&opts.Height, "h", 800, "image height in pixels")
	flag.Float64Var(&opts.Max, "max", 5, "distance from the center to the nearer edge in plane units")
	flag.BoolVar(&opts.Grid, "grid", false, "draw lines at integer coordinates (only if max <= 50)")
	flag.IntVar(&opts.Workers, "threads", runtime.NumCPU(), "number of rendering goroutines (at most the number of CPUs)")
	flag.StringVar(&out, "o", "plot.jpg", "output file; .jpg is added if missing")
	flag.Usage = func() {
		log.Printf("usage: %s [options] 'f(z)'", flag.CommandLine.Name())
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatal("need exactly one expression")
	}
	if opts.Workers <= 0 || opts.Workers > runtime.NumCPU() {
		opts.Workers = runtime.NumCPU()
	}

	e, err := cplot.Parse(flag.Arg(0), cplot.Complex)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("using %d workers", opts.Workers)
	img, err := plot.Render(e, opts)
	if err != nil {
		log.Fatal(err)
	}
	name, err := plot.SaveJPEG(out, img)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %s", name)
}
