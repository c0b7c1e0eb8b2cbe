package fft

import (
	"math"
	"sync"
)

// Workspace bundles the scratch an FFT convolution needs: two complex
// buffers, a real output buffer and the twiddle table. A workspace is
// owned by exactly one goroutine between GetWorkspace and
// PutWorkspace; the pool keeps arenas at their high-water size so
// repeated large convolutions stop allocating.
type Workspace struct {
	rootsFor int          // transform length the twiddle table covers
	roots    []complex128 // roots[j] = e^(-2*pi*i*j/rootsFor), j < rootsFor/2
	a, b     []complex128
	c        []float64
}

var pool = sync.Pool{New: func() any { return new(Workspace) }}

// GetWorkspace checks a workspace out of the pool.
func GetWorkspace() *Workspace {
	return pool.Get().(*Workspace)
}

// PutWorkspace returns a workspace to the pool. The workspace must not
// be used afterwards, nor any slice returned by its Convolve.
func PutWorkspace(ws *Workspace) {
	pool.Put(ws)
}

// ensure grows the scratch buffers and twiddle table to cover a
// transform of length n. Growth is monotonic.
func (ws *Workspace) ensure(n int) {
	if cap(ws.a) < n {
		ws.a = make([]complex128, n)
		ws.b = make([]complex128, n)
		ws.c = make([]float64, n)
	}
	ws.a = ws.a[:cap(ws.a)]
	ws.b = ws.b[:cap(ws.b)]
	ws.c = ws.c[:cap(ws.c)]
	if n > ws.rootsFor {
		ws.rootsFor = n
		ws.roots = make([]complex128, n/2)
		for j := range ws.roots {
			ang := -2 * math.Pi * float64(j) / float64(n)
			ws.roots[j] = complex(math.Cos(ang), math.Sin(ang))
		}
	}
}
