package metrics

// Pre-defined metrics for the zkarith command. They live in DefaultRegistry
// so every op records into the same place.

var (
	// ---- Self-test ----

	// SelftestChecks counts property checks run by the selftest op.
	SelftestChecks = DefaultRegistry.Counter("selftest.checks")
	// SelftestFailures counts property checks that did not hold.
	SelftestFailures = DefaultRegistry.Counter("selftest.failures")

	// ---- Scalar multiplication ----

	// ScalarMuls counts scalar multiplications performed.
	ScalarMuls = DefaultRegistry.Counter("curve.scalar_muls")
	// ScalarMulTime records the time per scalar multiplication in ns.
	ScalarMulTime = DefaultRegistry.Histogram("curve.scalar_mul_ns")

	// ---- Benchmark ----

	// BenchIterations holds the iteration count of the last bench run.
	BenchIterations = DefaultRegistry.Gauge("bench.iterations")
)

// BenchHistogram returns the per-operation latency histogram for op on the
// named field or curve, e.g. "bench.bn254-fp.mul_ns".
func BenchHistogram(target, op string) *Histogram {
	return DefaultRegistry.Histogram("bench." + target + "." + op + "_ns")
}
