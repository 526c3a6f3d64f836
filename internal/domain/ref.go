package domain

import "fmt"

// Virtual category ids as the server and the on-disk schema know them.
// New code should go through Ref instead of comparing raw ids.
const (
	VCatUncategorized int64 = 0
	VCatStarred       int64 = -1
	VCatPublished     int64 = -2
	VCatFresh         int64 = -3
	VCatAll           int64 = -4
)

type RefKind int

const (
	RefCategory RefKind = iota
	RefVirtualCategory
	RefFeed
	RefLabel
)

// Ref identifies a refresh/mark scope without magic-number branching.
// The legacy integer encoding (negative virtual categories, label ids
// below -10) exists only at the persistence and wire boundaries.
type Ref struct {
	Kind RefKind
	ID   int64
}

func CategoryRef(id int64) Ref        { return Ref{Kind: RefCategory, ID: id} }
func FeedRef(id int64) Ref            { return Ref{Kind: RefFeed, ID: id} }
func LabelRef(id int64) Ref           { return Ref{Kind: RefLabel, ID: id} }
func VirtualCategoryRef(id int64) Ref { return Ref{Kind: RefVirtualCategory, ID: id} }

// RefFromLegacy translates the (id, isCategory) pair used by the wire
// protocol and the schema into a tagged reference.
func RefFromLegacy(id int64, isCategory bool) Ref {
	switch {
	case isCategory && id < 0:
		return VirtualCategoryRef(id)
	case isCategory:
		return CategoryRef(id)
	case IsLabelID(id):
		return LabelRef(id)
	case id < 0:
		return VirtualCategoryRef(id)
	default:
		return FeedRef(id)
	}
}

// Legacy returns the (id, isCategory) encoding expected by the store and
// the server API.
func (r Ref) Legacy() (int64, bool) {
	switch r.Kind {
	case RefCategory, RefVirtualCategory:
		return r.ID, true
	default:
		return r.ID, false
	}
}

func (r Ref) IsCategory() bool {
	return r.Kind == RefCategory || r.Kind == RefVirtualCategory
}

func (r Ref) String() string {
	switch r.Kind {
	case RefCategory:
		return fmt.Sprintf("category/%d", r.ID)
	case RefVirtualCategory:
		return fmt.Sprintf("vcat/%d", r.ID)
	case RefLabel:
		return fmt.Sprintf("label/%d", r.ID)
	default:
		return fmt.Sprintf("feed/%d", r.ID)
	}
}
