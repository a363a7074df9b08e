package beamterm

import "github.com/scigolib/beamterm/term"

// ImmediateKind re-exports term.ImmediateKind and its constants.
type ImmediateKind = term.ImmediateKind

const (
	ImmediateNone     = term.ImmediateNone
	ImmediateSmallInt = term.ImmediateSmallInt
	ImmediateAtom     = term.ImmediateAtom
	ImmediatePid      = term.ImmediatePid
	ImmediatePort     = term.ImmediatePort
	ImmediateNil      = term.ImmediateNil
)

// MaxSmallInt and MinSmallInt bound the immediate small integer range.
const (
	MaxSmallInt = term.MaxSmallInt
	MinSmallInt = term.MinSmallInt
)

// FitsSmallInt reports whether v fits in an immediate small integer.
func FitsSmallInt(v int64) bool { return term.FitsSmallInt(v) }
