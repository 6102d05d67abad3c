package model

import "fmt"

// SelectionScheme chooses which automaton vertices get memoized.
type SelectionScheme int

const (
	// SelectionNone disables memoization.
	SelectionNone SelectionScheme = iota
	// SelectionFull memoizes every vertex.
	SelectionFull
	// SelectionInDegree memoizes vertices with in-degree greater than one.
	SelectionInDegree
	// SelectionLoop memoizes loop destinations only.
	SelectionLoop
)

// AllSelections lists every selection scheme in engine order.
var AllSelections = []SelectionScheme{SelectionNone, SelectionFull, SelectionInDegree, SelectionLoop}

// MemoizingSelections lists the schemes that actually memoize.
var MemoizingSelections = []SelectionScheme{SelectionFull, SelectionInDegree, SelectionLoop}

// Code is the command-line token understood by the engine.
func (s SelectionScheme) Code() string {
	switch s {
	case SelectionNone:
		return "none"
	case SelectionFull:
		return "full"
	case SelectionInDegree:
		return "indeg"
	case SelectionLoop:
		return "loop"
	}

	return fmt.Sprintf("selection(%d)", int(s))
}

func (s SelectionScheme) String() string {
	return s.Code()
}

// PolicyName is the long policy name used by static phi analyses.
func (s SelectionScheme) PolicyName() string {
	switch s {
	case SelectionNone:
		return "memoNone"
	case SelectionFull:
		return "memoAll"
	case SelectionInDegree:
		return "memoInDegGT1"
	case SelectionLoop:
		return "memoLoop"
	}

	return s.Code()
}

// MarshalText implements encoding.TextMarshaler.
func (s SelectionScheme) MarshalText() ([]byte, error) {
	return []byte(s.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SelectionScheme) UnmarshalText(text []byte) error {
	parsed, err := ParseSelectionScheme(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// ParseSelectionScheme maps an engine code back to a SelectionScheme.
func ParseSelectionScheme(code string) (SelectionScheme, error) {
	for _, s := range AllSelections {
		if s.Code() == code {
			return s, nil
		}
	}

	return SelectionNone, fmt.Errorf("unknown selection scheme %q", code)
}

// EncodingScheme chooses how memoized values are represented.
type EncodingScheme int

const (
	// EncodingNone stores one bit per (vertex, position).
	EncodingNone EncodingScheme = iota
	// EncodingNegative stores only visited positions.
	EncodingNegative
	// EncodingRLE run-length encodes the visit vector.
	EncodingRLE
)

// AllEncodings lists every encoding scheme in engine order.
var AllEncodings = []EncodingScheme{EncodingNone, EncodingNegative, EncodingRLE}

// Code is the command-line token understood by the engine.
func (e EncodingScheme) Code() string {
	switch e {
	case EncodingNone:
		return "none"
	case EncodingNegative:
		return "neg"
	case EncodingRLE:
		return "rle"
	}

	return fmt.Sprintf("encoding(%d)", int(e))
}

func (e EncodingScheme) String() string {
	return e.Code()
}

// MarshalText implements encoding.TextMarshaler.
func (e EncodingScheme) MarshalText() ([]byte, error) {
	return []byte(e.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EncodingScheme) UnmarshalText(text []byte) error {
	parsed, err := ParseEncodingScheme(string(text))
	if err != nil {
		return err
	}

	*e = parsed

	return nil
}

// ParseEncodingScheme maps an engine code back to an EncodingScheme.
func ParseEncodingScheme(code string) (EncodingScheme, error) {
	for _, e := range AllEncodings {
		if e.Code() == code {
			return e, nil
		}
	}

	return EncodingNone, fmt.Errorf("unknown encoding scheme %q", code)
}

// SchemePair is one cell of the selection x encoding matrix.
type SchemePair struct {
	Selection SelectionScheme
	Encoding  EncodingScheme
}

func (p SchemePair) String() string {
	return p.Selection.Code() + "/" + p.Encoding.Code()
}

// Query is the ephemeral request handed to the engine.
type Query struct {
	Pattern Pattern `json:"pattern"`
	Input   string  `json:"input"`
}

// EngineResponse is the decoded result of one engine invocation.
type EngineResponse struct {
	InputLength         int
	AutomatonSize       int
	SelectedVertexCount int
	// Configured echoes the scheme names reported by the engine.
	ConfiguredSelection string
	ConfiguredEncoding  string
	MaxCostPerVertex    []int64
	MaxBytesPerVertex   []int64
	TotalVisits         int64
	MostVisitedSimPos   int64
	PossibleMemoVisits  int64
	Matched             bool
	SimTimeUS           int64
	NeedBits            int
}

// SpaceCost is the sum of the per-vertex maximum costs.
func (r EngineResponse) SpaceCost() int64 {
	var total int64
	for _, c := range r.MaxCostPerVertex {
		total += c
	}

	return total
}

// SpaceBytes is the sum of the per-vertex maximum memory in bytes.
func (r EngineResponse) SpaceBytes() int64 {
	var total int64
	for _, b := range r.MaxBytesPerVertex {
		total += b
	}

	return total
}
