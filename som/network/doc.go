// Package network implements the distance-neuron layer a self-organizing
// map trains: a DistanceLayer computes each neuron's Euclidean distance to
// an input vector and reports the argmin winner, and a Network binds a
// DistanceLayer to a topology.Builder and its resolved topology.LocationMap
// so the learner can walk neighbor rings from the winner (spec.md §4.12).
package network
