package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eth2030/zkarith/bigint"
	"github.com/eth2030/zkarith/field"
	"github.com/eth2030/zkarith/log"
	"github.com/eth2030/zkarith/metrics"
	"github.com/eth2030/zkarith/poly"
)

// maxCurveSamples bounds the number of random points drawn by selftest; each
// one costs several full scalar multiplications.
const maxCurveSamples = 8

// ---------------------------------------------------------------------------
// params
// ---------------------------------------------------------------------------

func writeFieldParams(w io.Writer, f *field.Field) {
	m := f.Modulus()
	fmt.Fprintf(w, "field:        %s\n", f.Name())
	fmt.Fprintf(w, "modulus:      %s\n", hexutil.EncodeBig(m.P.ToBig()))
	fmt.Fprintf(w, "bits:         %d\n", f.BitLen())
	fmt.Fprintf(w, "r:            %s\n", hexutil.EncodeBig(m.R.ToBig()))
	fmt.Fprintf(w, "r2:           %s\n", hexutil.EncodeBig(m.R2.ToBig()))
	fmt.Fprintf(w, "r3:           %s\n", hexutil.EncodeBig(m.R3.ToBig()))
	fmt.Fprintf(w, "neginv:       %s\n", hexutil.EncodeUint64(m.NegInv))
}

// ---------------------------------------------------------------------------
// selftest
// ---------------------------------------------------------------------------

// checker records the outcome of named property checks.
type checker struct {
	log    *log.Logger
	checks int
	failed int
}

func (c *checker) check(name string, ok bool) {
	c.checks++
	metrics.SelftestChecks.Inc()
	if !ok {
		c.failed++
		metrics.SelftestFailures.Inc()
		c.log.Error("Check failed", "check", name)
		return
	}
	c.log.Trace("Check passed", "check", name)
}

// runSelftest checks the field axioms on n random elements of f, the group
// law on random points of c and the polynomial ring over f. It returns the
// process exit code.
func runSelftest(w io.Writer, f *field.Field, c curveRunner, n int) int {
	ck := &checker{log: log.Module("selftest")}

	samples := make([]field.Element, n)
	for i := range samples {
		a, err := f.Random(rand.Reader)
		if err != nil {
			ck.log.Error("Failed to sample field element", "err", err)
			return 1
		}
		samples[i] = a
	}
	checkField(ck, f, samples)
	checkPoly(ck, f, samples)
	ck.log.Debug("Field checks done", "field", f.Name(), "checks", ck.checks)

	if err := c.selftest(ck, min(n, maxCurveSamples)); err != nil {
		ck.log.Error("Failed to sample curve point", "err", err)
		return 1
	}

	fmt.Fprintf(w, "checks:       %d\n", ck.checks)
	fmt.Fprintf(w, "failures:     %d\n", ck.failed)
	if ck.failed > 0 {
		return 1
	}
	return 0
}

func checkField(ck *checker, f *field.Field, samples []field.Element) {
	one, zero := f.One(), f.Zero()
	m := f.Modulus()
	pMinus1, _ := bigint.Sub(m.P, bigint.Uint256{1})

	ck.check("one squared is one", f.IsOne(f.Sqr(one)))
	ck.check("inverse of zero is zero", f.IsZero(f.Inv(zero)))
	ck.check("negation of zero is zero", f.IsZero(f.Neg(zero)))

	for i, a := range samples {
		b := samples[(i+1)%len(samples)]
		c := samples[(i+2)%len(samples)]

		ck.check("addition commutes", f.Equal(f.Add(a, b), f.Add(b, a)))
		ck.check("addition associates", f.Equal(f.Add(f.Add(a, b), c), f.Add(a, f.Add(b, c))))
		ck.check("zero is additive identity", f.Equal(f.Add(a, zero), a))
		ck.check("a minus a is zero", f.IsZero(f.Sub(a, a)))
		ck.check("a plus -a is zero", f.IsZero(f.Add(a, f.Neg(a))))
		ck.check("reverse subtraction", f.Equal(f.SubReverse(a, b), f.Sub(b, a)))
		ck.check("multiplication commutes", f.Equal(f.Mul(a, b), f.Mul(b, a)))
		ck.check("multiplication associates", f.Equal(f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c))))
		ck.check("multiplication distributes", f.Equal(f.Mul(a, f.Add(b, c)), f.Add(f.Mul(a, b), f.Mul(a, c))))
		ck.check("one is multiplicative identity", f.Equal(f.Mul(a, one), a))
		ck.check("square matches product", f.Equal(f.Sqr(a), f.Mul(a, a)))
		ck.check("standard form round trip", f.Equal(f.FromStd(f.ToStd(a)), a))
		ck.check("cube by pow", f.Equal(f.Pow(a, 3), f.Mul(f.Sqr(a), a)))
		ck.check("results are reduced", f.IsReduced(f.Mul(a, b)) && f.IsReduced(f.Add(a, b)))
		if f.IsZero(a) {
			continue
		}
		ck.check("a times inverse is one", f.IsOne(f.Mul(a, f.Inv(a))))
		ck.check("a divided by a is one", f.IsOne(f.Div(a, a)))
		ck.check("division matches inverse", f.Equal(f.Div(b, a), f.Mul(b, f.Inv(a))))
		ck.check("fermat", f.IsOne(f.PowWords(a, pMinus1[:])))
	}
}

func checkPoly(ck *checker, f *field.Field, samples []field.Element) {
	r := poly.NewRing[field.Element](f)
	if len(samples) < 4 {
		return
	}
	p, q, x := samples[:2], samples[2:4], samples[0]

	ck.check("zero polynomial has degree -1", r.Degree([]field.Element{f.Zero(), f.Zero()}) == -1)
	ck.check("product evaluates to product of evaluations",
		f.Equal(r.Eval(r.Mul(p, q), x), f.Mul(r.Eval(p, x), r.Eval(q, x))))
	ck.check("sum evaluates to sum of evaluations",
		f.Equal(r.Eval(r.Add(p, q), x), f.Add(r.Eval(p, x), r.Eval(q, x))))
	lc, err := r.LinComb([]field.Element{x, f.One()}, [][]field.Element{p, q})
	ck.check("linear combination", err == nil && r.Equal(lc, r.Add(r.Scale(x, p), q)))
}

// ---------------------------------------------------------------------------
// bench
// ---------------------------------------------------------------------------

// runBench times the core field operations over n iterations and scalar
// multiplication over n/100, recording ns/op into the bench histograms.
func runBench(w io.Writer, f *field.Field, c curveRunner, n int) {
	logger := log.Module("bench")
	metrics.BenchIterations.Set(int64(n))

	a, b := f.Hash([]byte("zkarith bench a")), f.Hash([]byte("zkarith bench b"))
	benches := []struct {
		name string
		fn   func()
	}{
		{"add", func() { a = f.Add(a, b) }},
		{"sub", func() { a = f.Sub(a, b) }},
		{"mul", func() { a = f.Mul(a, b) }},
		{"sqr", func() { a = f.Sqr(a) }},
		{"inv", func() { a = f.Inv(f.Add(a, b)) }},
	}
	for _, op := range benches {
		h := metrics.BenchHistogram(f.Name(), op.name)
		t := metrics.NewTimer(h)
		for i := 0; i < n; i++ {
			op.fn()
		}
		d := t.Stop(n)
		logger.Debug("Benchmarked", "target", f.Name(), "op", op.name, "elapsed", d)
		fmt.Fprintf(w, "%-24s %12.1f ns/op\n", f.Name()+"/"+op.name, perOp(d, n))
	}

	k := max(n/100, 1)
	d := c.bench(k)
	logger.Debug("Benchmarked", "target", c.name(), "op", "scalar_mul", "elapsed", d)
	fmt.Fprintf(w, "%-24s %12.1f ns/op\n", c.name()+"/scalar_mul", perOp(d, k))
}

func perOp(d time.Duration, n int) float64 {
	return float64(d.Nanoseconds()) / float64(n)
}
