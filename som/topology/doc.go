// Package topology builds the lattices a self-organizing map's neurons live
// on: rectangular, hexagonal and octagonal 2D grids, and cube and octagonal
// prism 3D grids, each optionally toroidal. A Builder assigns every lattice
// position a canonical string key and an ordered list of neighbor keys whose
// positions are fixed per lattice kind (spec.md §4.10).
package topology
