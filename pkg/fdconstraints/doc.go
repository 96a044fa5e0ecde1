// Package fdconstraints is a small demonstration constraint collaborator
// library: just enough propagators and a brancher to exercise pkg/kernel's
// Propagator/View contract and pkg/search's engines end to end. It is
// explicitly not a general constraint library — constraint libraries are
// external collaborators reached only through the generic propagator
// interface, and this package is exactly such a collaborator, posted the
// same way a real one would be.
package fdconstraints
