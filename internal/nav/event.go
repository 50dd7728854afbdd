package nav

// Event is one of the inputs the controller accepts.
type Event interface {
	event()
}

// Previous moves one page back.
type Previous struct{}

// Next moves one page forward.
type Next struct{}

// SearchChanged replaces the pending search query.
type SearchChanged struct {
	Text string
}

// Search runs the pending query and jumps to the last matching recipe.
type Search struct{}

// PortionChanged sets the portion multiplier.
type PortionChanged struct {
	Value float64
}

func (Previous) event()       {}
func (Next) event()           {}
func (SearchChanged) event()  {}
func (Search) event()         {}
func (PortionChanged) event() {}

// Effect reports what an Update did, for status lines. It is not state.
type Effect int

const (
	NoChange Effect = iota
	PageChanged
	QueryChanged
	MultiplierChanged
	SearchMatched
	SearchNoMatch
)

func (e Effect) String() string {
	switch e {
	case PageChanged:
		return "page changed"
	case QueryChanged:
		return "query changed"
	case MultiplierChanged:
		return "multiplier changed"
	case SearchMatched:
		return "search matched"
	case SearchNoMatch:
		return "no recipe matched"
	default:
		return "no change"
	}
}
