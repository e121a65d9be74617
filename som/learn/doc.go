// Package learn implements the self-organizing map training rule: find the
// winning neuron for an input, then spread a shrinking update outward over
// the winner's topology neighbor rings (spec.md §4.11).
package learn
