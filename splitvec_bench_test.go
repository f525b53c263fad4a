package splitvec

import (
	"testing"

	"github.com/example/splitvec/internal/benchconfig"
)

// policyFor builds the GrowthPolicy a benchconfig.Scenario names.
func policyFor(sc benchconfig.Scenario) GrowthPolicy {
	switch sc.Policy {
	case "linear":
		return NewLinear(sc.Exponent)
	case "recursive":
		return Recursive{}
	default:
		return Doubling{}
	}
}

// BenchmarkPush_Scenarios sweeps the growth-policy scenarios declared in
// testdata/benchscenarios.yaml, so fragment sizes and push counts are swept
// declaratively rather than hard-coded per benchmark function.
func BenchmarkPush_Scenarios(b *testing.B) {
	suite, err := benchconfig.Load("testdata/benchscenarios.yaml")
	if err != nil {
		b.Fatalf("loading benchconfig: %v", err)
	}

	for _, sc := range suite.Scenarios {
		sc := sc
		b.Run(sc.Name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sv := WithGrowth[int](policyFor(sc))
				for j := 0; j < sc.Pushes; j++ {
					sv.Push(j)
				}
			}
		})
	}
}

// BenchmarkGet_Scenarios measures random-access cost after each scenario's
// push count, which is where Doubling/Linear's O(1) translator formula pays
// off against Recursive's O(k) walking fallback.
func BenchmarkGet_Scenarios(b *testing.B) {
	suite, err := benchconfig.Load("testdata/benchscenarios.yaml")
	if err != nil {
		b.Fatalf("loading benchconfig: %v", err)
	}

	for _, sc := range suite.Scenarios {
		sc := sc
		b.Run(sc.Name, func(b *testing.B) {
			sv := WithGrowth[int](policyFor(sc))
			for j := 0; j < sc.Pushes; j++ {
				sv.Push(j)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sv.Get(i % sc.Pushes)
			}
		})
	}
}
