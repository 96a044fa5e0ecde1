package kernel

// Choice is an immutable branching descriptor produced by a Brancher.
// The engine may serialise a Choice for later replay
// (e.g. to recreate a path to a node without keeping every intermediate
// clone around), so concrete Choice payloads should be plain data.
type Choice struct {
	// BrancherIdx is the index (within the owning Space's branchers
	// slice) of the brancher that produced this choice; Commit is routed
	// back to it.
	BrancherIdx int
	// Alternatives is the branch arity: alt ranges over [0, Alternatives).
	Alternatives int
	// Data is the brancher-specific payload (e.g. which variable and
	// which value/bound to branch on).
	Data any
}

// Brancher produces a sequence of Choice objects.
// Branchers attached to a Space are ordered; Space.Choice asks the first
// non-exhausted brancher.
type Brancher interface {
	// Status reports whether this brancher still has a decision to
	// offer for the current domain state.
	Status(home *Space) bool

	// Choice selects a branching decision. Undefined unless Status
	// returns true.
	Choice(home *Space) Choice

	// Commit applies alternative alt (0 <= alt < choice.Alternatives) to
	// the space, returning modification feedback via the event it
	// raised (MeFailed if the alternative is inconsistent).
	Commit(home *Space, choice Choice, alt int) ModEvent

	// Copy duplicates the brancher for a cloned space.
	Copy(home *Space, share bool) Brancher
}
