package cst

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Identifier is a possibly-qualified name such as `A::B::c`. The nested name
// specifiers are the leading segments (`A`, `B`), each with its own range.
// Names are NFC-normalized so that lookups never depend on how the source
// file encoded a code point sequence.
type Identifier struct {
	NNS       []string
	Name      string
	NNSRanges []Range
	NameRange Range
}

func NewIdentifier(name string, nameRange Range) Identifier {
	return Identifier{
		Name:      norm.NFC.String(name),
		NameRange: nameRange,
	}
}

func NewQualifiedIdentifier(nns []string, name string, nnsRanges []Range, nameRange Range) Identifier {
	normalized := make([]string, len(nns))
	for i, seg := range nns {
		normalized[i] = norm.NFC.String(seg)
	}
	return Identifier{
		NNS:       normalized,
		Name:      norm.NFC.String(name),
		NNSRanges: nnsRanges,
		NameRange: nameRange,
	}
}

func (id Identifier) IsQualified() bool {
	return len(id.NNS) > 0
}

func (id Identifier) String() string {
	if !id.IsQualified() {
		return id.Name
	}
	return strings.Join(id.NNS, "::") + "::" + id.Name
}

// Clone deep-copies the identifier so a dependency record can outlive the
// CST node it was collected from.
func (id Identifier) Clone() Identifier {
	nns := make([]string, len(id.NNS))
	copy(nns, id.NNS)
	ranges := make([]Range, len(id.NNSRanges))
	copy(ranges, id.NNSRanges)
	return Identifier{
		NNS:       nns,
		Name:      id.Name,
		NNSRanges: ranges,
		NameRange: id.NameRange,
	}
}
