package scanner

// FileRef names the source a scan came from, for diagnostics. Kept as a
// dedicated type rather than a bare string in case callers later want to
// attach richer source handles.
type FileRef string

// Pos is a human-facing location: 1-based line and column, derived lazily
// from a byte Offset by walking the source once. The scanner itself never
// tracks line/col during the hot loop; see Scanner.PosAt.
type Pos struct {
	File FileRef
	Line int
	Col  int
}
