package qdisc

import "math"

/*
Config carries the tunable constants of the statistical protocols. The
exact discrimination protocols have nothing to configure; only the
threshold family cares about trial budgets and the angle window inside
which its two hypothesis families stay statistically separable.
*/
type Config struct {
	// EstimatorTrials is the number of independent overlap trials per
	// estimate. The two rotation families coincide only at isolated
	// angles, so more trials strictly tightens the decision; budgets up
	// to 1e6 are reasonable near the edges of the angle window.
	EstimatorTrials int

	// EstimatorWorkers is the number of machines the estimator fans
	// trials out over. Aggregation is a weighted mean, so the result
	// does not depend on scheduling order.
	EstimatorWorkers int

	// MinAngle and MaxAngle bound the angles the threshold protocols
	// accept, keeping the hypothesis overlap bounded away from 1.
	MinAngle float64
	MaxAngle float64

	// Seed makes estimator outcomes reproducible when non-zero.
	Seed uint64
}

func NewConfig() *Config {
	return &Config{
		EstimatorTrials:  100_000,
		EstimatorWorkers: 4,
		MinAngle:         0.01 * math.Pi,
		MaxAngle:         0.99 * math.Pi,
	}
}
