package homolog

import (
	"github.com/JKural/mc-homology/algebra"
	"github.com/JKural/mc-homology/chain"
	"github.com/JKural/mc-homology/construct"
	"github.com/JKural/mc-homology/cubical"
	"github.com/JKural/mc-homology/logging"
	"github.com/JKural/mc-homology/matrix"
	"github.com/JKural/mc-homology/mconfig"
)

// ComputeHomologyEuclidean builds the chain complex induced by cc and
// reduces it over a Euclidean-domain carrier (typically algebra.Int),
// yielding Betti numbers and torsion coefficients. When
// policy.StrictChainCheck() is set, the assembled boundary matrices
// are validated against the chain condition B(n-1)*Bn == 0 before
// reduction; ChainComplexOver's output always satisfies it by
// construction, so the check exists to catch a future regression in
// that construction rather than anything a caller could trigger.
func ComputeHomologyEuclidean[T algebra.EuclideanDomain[T]](
	cc *cubical.Complex,
	policy mconfig.Policy,
) (chain.Homology[T], error) {
	log := policyLogger(policy)
	log.Info("building chain complex", logging.Int("top_dimension", cc.Dimension()))

	boundaries := construct.ChainComplexOver[T](cc).Boundaries()
	complex, err := buildComplex(boundaries, policy)
	if err != nil {
		log.Error("chain condition violated", err)
		return chain.Homology[T]{}, err
	}

	log.Info("reducing via Smith normal form")
	return chain.HomologyEuclidean(complex), nil
}

// ComputeHomologyField builds the chain complex induced by cc and
// reduces it over a field carrier (typically a algebra.Zp[M]),
// yielding Betti numbers with no torsion.
func ComputeHomologyField[T algebra.Field[T]](
	cc *cubical.Complex,
	policy mconfig.Policy,
) (chain.Homology[T], error) {
	log := policyLogger(policy)
	log.Info("building chain complex", logging.Int("top_dimension", cc.Dimension()))

	boundaries := construct.ChainComplexOver[T](cc).Boundaries()
	complex, err := buildComplex(boundaries, policy)
	if err != nil {
		log.Error("chain condition violated", err)
		return chain.Homology[T]{}, err
	}

	log.Info("reducing via row echelon form")
	return chain.HomologyField(complex), nil
}

func policyLogger(policy mconfig.Policy) logging.Logger {
	if log := policy.Logger(); log != nil {
		return log
	}
	return logging.NopLogger{}
}

// buildComplex validates or trusts boundaries per policy. Since
// construct.ChainComplexOver already returns an unchecked complex
// built correctly by construction, this re-derives a checked one only
// when the policy demands it.
func buildComplex[T algebra.Ring[T]](
	boundaries []matrix.Matrix[T],
	policy mconfig.Policy,
) (chain.ChainComplex[T], error) {
	if policy.StrictChainCheck() {
		return chain.New(boundaries)
	}
	return chain.NewUnchecked(boundaries), nil
}
