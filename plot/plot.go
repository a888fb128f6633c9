// Package plot renders complex functions as domain-colored images.
//
// Each pixel is a point z in the complex plane centered on the image. The
// value f(z) is mapped to a color whose hue follows the argument of f(z) and
// whose brightness follows its magnitude. Rendering is split into horizontal
// bands evaluated concurrently.
package plot

import (
	"image"
	"math"
	"runtime"
	"sync"

	"github.com/zephyrtronium/cplot"
)

// Var is the name of the variable holding the plane coordinate.
const Var = 'z'

// Options controls rendering.
type Options struct {
	// Width and Height are the image dimensions in pixels.
	Width, Height int
	// Max is the distance from the center to the nearer edge of the image, in
	// plane units.
	Max float64
	// Grid draws lines at integer coordinates. It has no effect if Max is
	// greater than 50.
	Grid bool
	// Workers is the number of goroutines to render with. If it is not
	// positive or exceeds the number of CPUs, the number of CPUs is used.
	Workers int
}

// workers returns the number of workers to use.
func (o *Options) workers() int {
	n := runtime.NumCPU()
	if o.Workers <= 0 || o.Workers > n {
		return n
	}
	return o.Workers
}

// Band is a horizontal band of rows rendered by one worker.
type Band struct {
	Start, Rows int
}

// Bands divides height rows among n workers. Each band has height/n rows,
// with one more band for any remainder. If height is less than n, there is a
// single band.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	per := height / n
	if per == 0 {
		return []Band{{Start: 0, Rows: height}}
	}
	b := make([]Band, n, n+1)
	for i := range b {
		b[i] = Band{Start: i * per, Rows: per}
	}
	if rem := height - n*per; rem > 0 {
		b = append(b, Band{Start: n * per, Rows: rem})
	}
	return b
}

// Render evaluates e at every pixel of an image. e must have no free
// variables other than z. The first evaluation error ends rendering and is
// returned.
func Render(e *cplot.Expr[complex128], opts Options) (*image.RGBA, error) {
	for _, name := range e.Vars() {
		if name != Var {
			return nil, &cplot.NameError{Name: name}
		}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &SizeError{Width: opts.Width, Height: opts.Height}
	}
	if !(opts.Max > 0) {
		return nil, &RangeError{Max: opts.Max}
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	r := &renderer{
		e:    e,
		img:  img,
		opts: opts,
		ppi:  float64(min(opts.Width, opts.Height)) / (2 * opts.Max),
	}
	var wg sync.WaitGroup
	for _, b := range Bands(opts.Height, opts.workers()) {
		wg.Add(1)
		go func(b Band) {
			defer wg.Done()
			r.band(b)
		}(b)
	}
	wg.Wait()
	if r.err != nil {
		return nil, r.err
	}
	return img, nil
}

type renderer struct {
	e    *cplot.Expr[complex128]
	img  *image.RGBA
	opts Options
	// ppi is pixels per unit of the complex plane.
	ppi float64

	// mu guards err. Once err is set, other bands stop early.
	mu  sync.Mutex
	err error
}

// at returns the plane coordinate of a pixel.
func (r *renderer) at(row, col int) complex128 {
	x := float64(col-r.opts.Width/2) / r.ppi
	y := float64(r.opts.Height/2-row) / r.ppi
	return complex(x, y)
}

// band renders the rows of a band. Bands never overlap, so workers write to
// disjoint pixels.
func (r *renderer) band(b Band) {
	vars := map[rune]complex128{}
	grid := r.opts.Grid && r.opts.Max <= 50
	for row := b.Start; row < b.Start+b.Rows; row++ {
		if r.failed() {
			return
		}
		for col := 0; col < r.opts.Width; col++ {
			z := r.at(row, col)
			if grid && ongrid(z) {
				r.img.SetRGBA(col, row, GridColor)
				continue
			}
			vars[Var] = z
			w, err := r.e.Eval(vars)
			if err != nil {
				r.fail(err)
				return
			}
			r.img.SetRGBA(col, row, Color(w))
		}
	}
}

// fail records the first error.
func (r *renderer) fail(err error) {
	r.mu.Lock()
	if r.err == nil {
		r.err = err
	}
	r.mu.Unlock()
}

func (r *renderer) failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err != nil
}

// ongrid reports whether z is close to a line of integer real or imaginary
// part.
func ongrid(z complex128) bool {
	x, y := real(z), imag(z)
	return math.Abs(y-math.Floor(y)) < 0.002 || math.Abs(x-math.Floor(x)) < 0.002
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
