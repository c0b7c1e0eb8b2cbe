// Package verify cross-checks the engine against an independent
// oracle on randomized operands: every operation runs through the
// public façade (exercising the FFT multiply and the Newton divider at
// large sizes) and through math/big, and any disagreement is recorded.
// Tests run it small and deterministic; the CLI selftest runs it big.
package verify

import (
	"math/big"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/oisee/decbig/pkg/dec"
)

// Config holds a verification run's parameters.
type Config struct {
	Iters    int             // operand pairs to draw (default 10000)
	MaxLimbs int             // length cap in limbs (default 1024)
	Seed     int64           // base RNG seed; workers offset from it
	Workers  int             // parallel workers (default NumCPU)
	Log      *zerolog.Logger // progress sink (default: no output)
}

// Run draws cfg.Iters random operand pairs with geometrically
// distributed lengths and checks add, subtract, multiply, divmod and
// the text round-trip against math/big. Workers own disjoint values,
// which is the one concurrency pattern the engine supports.
func Run(cfg Config) *Report {
	if cfg.Iters <= 0 {
		cfg.Iters = 10000
	}
	if cfg.MaxLimbs <= 0 {
		cfg.MaxLimbs = 1024
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	log := zerolog.Nop()
	if cfg.Log != nil {
		log = *cfg.Log
	}

	rep := NewReport()
	start := time.Now()

	// Batch the iteration space so the channel stays small.
	const batch = 32
	ch := make(chan int, cfg.Iters/batch+1)
	for lo := 0; lo < cfg.Iters; lo += batch {
		n := batch
		if lo+n > cfg.Iters {
			n = cfg.Iters - lo
		}
		ch <- n
	}
	close(ch)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				log.Info().
					Int64("checked", rep.Checked()).
					Int("total", cfg.Iters).
					Int("mismatches", rep.Len()).
					Dur("elapsed", time.Since(start).Round(time.Second)).
					Msg("verify progress")
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(cfg.Seed + int64(id)*0x9e3779b9))
			for n := range ch {
				for i := 0; i < n; i++ {
					checkOnce(rng, cfg.MaxLimbs, rep)
				}
			}
		}(w)
	}
	wg.Wait()
	close(done)

	log.Info().
		Int64("checked", rep.Checked()).
		Int("mismatches", rep.Len()).
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).
		Msg("verify done")
	return rep
}

// checkOnce draws one operand pair and checks every operation.
func checkOnce(rng *rand.Rand, maxLimbs int, rep *Report) {
	as := randDigits(rng, maxLimbs)
	bs := randDigits(rng, maxLimbs)

	a, err := dec.ParseUint(as)
	if err != nil {
		rep.Add(Mismatch{Op: "parse", A: as, Got: err.Error(), Want: "ok"})
		return
	}
	b, err := dec.ParseUint(bs)
	if err != nil {
		rep.Add(Mismatch{Op: "parse", A: bs, Got: err.Error(), Want: "ok"})
		return
	}
	oa, _ := new(big.Int).SetString(as, 10)
	ob, _ := new(big.Int).SetString(bs, 10)

	// Round-trip (also canonicalizes leading zeros the same way the
	// oracle does).
	rep.check("emit", as, "", a.String(), oa.String())
	rep.check("emit", bs, "", b.String(), ob.String())

	rep.check("add", as, bs, a.Add(b).String(),
		new(big.Int).Add(oa, ob).String())

	hi, lo := a, b
	ohi, olo := oa, ob
	if a.Cmp(b) < 0 {
		hi, lo, ohi, olo = b, a, ob, oa
	}
	rep.check("sub", hi.String(), lo.String(), hi.Sub(lo).String(),
		new(big.Int).Sub(ohi, olo).String())

	rep.check("mul", as, bs, a.Mul(b).String(),
		new(big.Int).Mul(oa, ob).String())

	if !b.IsZero() {
		q, r := a.DivMod(b)
		oq, or := new(big.Int).QuoRem(oa, ob, new(big.Int))
		rep.check("div", as, bs, q.String(), oq.String())
		rep.check("mod", as, bs, r.String(), or.String())
	}
}

// randDigits returns a decimal string with a geometrically
// distributed length of up to maxLimbs limbs: short operands dominate
// but every doubling up to the cap keeps appearing.
func randDigits(rng *rand.Rand, maxLimbs int) string {
	limbs := 1
	for limbs < maxLimbs && rng.Intn(2) == 0 {
		limbs <<= 1
	}
	if limbs > maxLimbs {
		limbs = maxLimbs
	}
	n := rng.Intn(limbs*9) + 1
	buf := make([]byte, n)
	buf[0] = byte('1' + rng.Intn(9))
	for i := 1; i < n; i++ {
		buf[i] = byte('0' + rng.Intn(10))
	}
	return string(buf)
}
