package beamterm

// Predicate functions matching the BIF-visible names spec section 6 and
// section 4.2 list (is_tuple, is_integer, is_number, is_bitstring,
// is_list, is_float, and their is_not_* complements); each simply
// forwards to the corresponding Term method.

func IsImmediate(t Term) bool { return t.IsImmediate() }
func IsBoxed(t Term) bool     { return t.IsBoxed() }
func IsNumber(t Term) bool    { return t.IsNumber() }
func IsInteger(t Term) bool   { return t.IsInteger() }
func IsFloat(t Term) bool     { return t.IsFloat() }
func IsAtom(t Term) bool      { return t.IsAtom() }
func IsPid(t Term) bool       { return t.IsPid() }
func IsPort(t Term) bool      { return t.IsPort() }
func IsReference(t Term) bool { return t.IsReference() }
func IsFun(t Term) bool       { return t.IsFun() }
func IsTuple(t Term) bool     { return t.IsTuple() }
func IsMap(t Term) bool       { return t.IsMap() }
func IsList(t Term) bool      { return t.IsList() }
func IsBinary(t Term) bool    { return t.IsBinary() }
func IsBitstring(t Term) bool { return t.IsBitstring() }
func IsNil(t Term) bool       { return t.IsNil() }

func IsNotNumber(t Term) bool    { return t.IsNotNumber() }
func IsNotInteger(t Term) bool   { return t.IsNotInteger() }
func IsNotFloat(t Term) bool     { return t.IsNotFloat() }
func IsNotAtom(t Term) bool      { return t.IsNotAtom() }
func IsNotPid(t Term) bool       { return t.IsNotPid() }
func IsNotPort(t Term) bool      { return t.IsNotPort() }
func IsNotReference(t Term) bool { return t.IsNotReference() }
func IsNotFun(t Term) bool       { return t.IsNotFun() }
func IsNotTuple(t Term) bool     { return t.IsNotTuple() }
func IsNotMap(t Term) bool       { return t.IsNotMap() }
func IsNotList(t Term) bool      { return t.IsNotList() }
func IsNotBinary(t Term) bool    { return t.IsNotBinary() }
func IsNotBitstring(t Term) bool { return t.IsNotBitstring() }
