package shape

import "fmt"

// Kind identifies which shape variant a record encodes. The set is closed;
// wire tags are the ordinal values.
type Kind uint32

const (
	Circle Kind = iota
	Triangle
	Square
)

const kindCount = 3

// ParamCount reports how many float parameters a record of this kind
// carries: circle is center x/y plus radius, polygons are two values per
// vertex.
func (k Kind) ParamCount() int {
	switch k {
	case Circle:
		return 3
	case Triangle:
		return 6
	case Square:
		return 8
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

// KindFromTag maps a wire tag onto the closed kind set. ok is false for
// tags outside it.
func KindFromTag(tag uint32) (Kind, bool) {
	if tag >= kindCount {
		return 0, false
	}
	return Kind(tag), true
}
