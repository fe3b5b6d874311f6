package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eth2030/zkarith/curve"
	"github.com/eth2030/zkarith/field"
	"github.com/eth2030/zkarith/metrics"
)

// curveRunner runs the curve part of each op independently of the
// coordinate type.
type curveRunner interface {
	name() string
	params(w io.Writer)
	scalarMul(w io.Writer, k *big.Int)
	selftest(ck *checker, n int) error
	bench(n int) time.Duration
}

// groupRunner implements curveRunner for a curve with coordinates in E.
type groupRunner[E any] struct {
	c      *curve.Curve[E]
	fr     *field.Field // scalar field, of order c.Order()
	format func(E) string
}

var curves = map[string]curveRunner{
	curve.BN254G1.Name(): groupRunner[field.Element]{c: curve.BN254G1, fr: field.BN254Fr, format: formatFp},
	curve.BN254G2.Name(): groupRunner[field.E2]{c: curve.BN254G2, fr: field.BN254Fr, format: formatFp2},
}

func lookupCurve(name string) (curveRunner, error) {
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("curve: unknown curve %q", name)
	}
	return c, nil
}

func curveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func formatFp(x field.Element) string {
	return hexutil.EncodeBig(field.BN254Fp.ToBig(x))
}

func formatFp2(x field.E2) string {
	return "(" + formatFp(x.A0) + ", " + formatFp(x.A1) + ")"
}

func (g groupRunner[E]) name() string { return g.c.Name() }

func (g groupRunner[E]) params(w io.Writer) {
	cofactor, order := g.c.Cofactor(), g.c.Order()
	fmt.Fprintf(w, "curve:        %s\n", g.c.Name())
	fmt.Fprintf(w, "coordinates:  %s\n", g.c.Field().Name())
	fmt.Fprintf(w, "a:            %s\n", g.format(g.c.A()))
	fmt.Fprintf(w, "b:            %s\n", g.format(g.c.B()))
	fmt.Fprintf(w, "b3:           %s\n", g.format(g.c.B3()))
	g.writePoint(w, "generator", g.c.Generator())
	fmt.Fprintf(w, "cofactor:     %s\n", hexutil.EncodeBig(cofactor.ToBig()))
	fmt.Fprintf(w, "order:        %s\n", hexutil.EncodeBig(order.ToBig()))
}

func (g groupRunner[E]) writePoint(w io.Writer, label string, p curve.Affine[E]) {
	if p.IsInfinity() {
		fmt.Fprintf(w, "%-13s infinity\n", label+":")
		return
	}
	fmt.Fprintf(w, "%-13s %s\n", label+".x:", g.format(p.X))
	fmt.Fprintf(w, "%-13s %s\n", label+".y:", g.format(p.Y))
}

// scalarMul writes k times the generator.
func (g groupRunner[E]) scalarMul(w io.Writer, k *big.Int) {
	t := metrics.NewTimer(metrics.ScalarMulTime)
	p := g.c.ScalarMulBig(g.c.Generator(), k)
	t.Stop(1)
	metrics.ScalarMuls.Inc()

	fmt.Fprintf(w, "curve:        %s\n", g.c.Name())
	fmt.Fprintf(w, "scalar:       %s\n", hexutil.EncodeBig(k))
	g.writePoint(w, "result", p)
}

// selftest checks the group law on n random multiples of the generator.
func (g groupRunner[E]) selftest(ck *checker, n int) error {
	c := g.c
	gen, inf := c.Generator(), c.Infinity()
	order := c.Order()

	ck.check("generator is valid", c.Validate(gen) == nil)
	ck.check("infinity is in the subgroup", c.InSubgroup(inf))
	ck.check("order times generator is infinity", c.ScalarMulWords(gen, order[:]).IsInfinity())
	ck.check("zero times generator is infinity", c.ScalarMulUint64(gen, 0).IsInfinity())
	ck.check("one times generator is generator", c.Equal(c.ScalarMulUint64(gen, 1), gen))
	ck.check("double twice is times four", c.Equal(c.Double(c.Double(gen)), c.ScalarMulUint64(gen, 4)))
	ck.check("infinity doubles to infinity", c.Double(inf).IsInfinity())

	pts := make([]curve.Affine[E], n)
	for i := range pts {
		k, err := g.fr.Random(rand.Reader)
		if err != nil {
			return err
		}
		pts[i] = c.ScalarMulElement(gen, g.fr, k)
		metrics.ScalarMuls.Inc()
		ck.check("scalar entry points agree", c.Equal(pts[i], c.ScalarMulBig(gen, g.fr.ToBig(k))))
	}

	raw := make([]uint64, c.PointWords())
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s := pts[(i+2)%len(pts)]

		ck.check("point is on the curve", c.OnCurve(p))
		ck.check("point is in the subgroup", c.InSubgroup(p))
		ck.check("infinity is identity", c.Equal(c.Add(p, inf), p) && c.Equal(c.Add(inf, p), p))
		ck.check("p plus -p is infinity", c.Add(p, c.Neg(p)).IsInfinity())
		ck.check("addition commutes", c.Equal(c.Add(p, q), c.Add(q, p)))
		ck.check("addition associates", c.Equal(c.Add(c.Add(p, q), s), c.Add(p, c.Add(q, s))))
		ck.check("double matches self addition", c.Equal(c.Double(p), c.Add(p, p)))
		ck.check("subtraction inverts addition", c.Equal(c.Add(c.Sub(p, q), q), p))
		ck.check("projective addition matches affine",
			c.Equal(c.ToAffine(c.ProjAdd(c.ToProjective(p), c.ToProjective(q))), c.Add(p, q)))
		ck.check("projective doubling matches affine",
			c.Equal(c.ToAffine(c.ProjDouble(c.ToProjective(p))), c.Double(p)))
		ck.check("cleared cofactor is in the subgroup", c.InSubgroup(c.ClearCofactor(p)))

		c.PutWords(raw, p)
		back, err := c.ReadWords(raw)
		ck.check("raw layout round trip", err == nil && c.Equal(back, p))
	}
	return nil
}

// bench times n scalar multiplications by a fixed full-width scalar.
func (g groupRunner[E]) bench(n int) time.Duration {
	k := g.fr.Hash([]byte("zkarith bench scalar"))
	p := g.c.Generator()

	t := metrics.NewTimer(metrics.BenchHistogram(g.c.Name(), "scalar_mul"))
	for i := 0; i < n; i++ {
		p = g.c.ScalarMulElement(p, g.fr, k)
	}
	d := t.Stop(n)

	metrics.ScalarMuls.Add(int64(n))
	metrics.ScalarMulTime.ObservePerOp(d, n)
	return d
}
