package testkit

import (
	"bayesgrid/domain/bernoulli"
)

// TestKit provides shared test fixtures
type TestKit struct{}

// NewTestKit creates a new test kit instance
func NewTestKit() *TestKit {
	return &TestKit{}
}

// GlobeTosses returns the canonical toss record W L W W W L W L W:
// 6 water hits in 9 tosses.
func (t *TestKit) GlobeTosses() []bool {
	return []bool{true, false, true, true, true, false, true, false, true}
}

// GlobeObservation returns the summary of the canonical toss record.
func (t *TestKit) GlobeObservation() bernoulli.Observation {
	obs, err := bernoulli.SummarizeOutcomes(t.GlobeTosses())
	if err != nil {
		panic(err) // fixture is static and always valid
	}
	return obs
}
