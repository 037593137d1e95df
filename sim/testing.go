// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// T_recorder is an observable for testing which records the iteration
// index seen at every dispatch
type T_recorder struct {
	Mask  CheckTime // dispatch points to record at
	Iters []int     // iteration indices seen by Filter
}

// Check returns true if the mask includes the given dispatch point
func (o *T_recorder) Check(t CheckTime) bool {
	return o.Mask&t == t
}

// Filter records the current iteration index
func (o *T_recorder) Filter(s *Simulation) error {
	o.Iters = append(o.Iters, s.Iteration())
	return nil
}

// T_tagger is an observable for testing which appends its tag to a
// shared log at every dispatch, to assert invocation order
type T_tagger struct {
	Mask CheckTime // dispatch points to record at
	Tag  string    // tag appended to the shared log
	Log  *[]string // shared log
}

// Check returns true if the mask includes the given dispatch point
func (o *T_tagger) Check(t CheckTime) bool {
	return o.Mask&t == t
}

// Filter appends the tag to the shared log
func (o *T_tagger) Filter(s *Simulation) error {
	*o.Log = append(*o.Log, o.Tag)
	return nil
}
