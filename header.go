package beamterm

import "github.com/scigolib/beamterm/term"

// Kind re-exports term.Kind and its constants so callers classify a
// Header without importing package term directly.
type Kind = term.Kind

const (
	KindClosure    = term.KindClosure
	KindTuple      = term.KindTuple
	KindCons       = term.KindCons
	KindBinaryHeap = term.KindBinaryHeap
	KindBinarySub  = term.KindBinarySub
	KindBignum     = term.KindBignum
	KindMap        = term.KindMap
	KindReference  = term.KindReference
	KindFloat      = term.KindFloat
)
