package cli

import (
	"fmt"

	"github.com/fiber-space/exhaustive/internal/binding"
)

// renderCollection returns one line per collection element, in
// collection order. Records render with sorted keys.
func renderCollection(coll *binding.Collection) []string {
	lines := make([]string, 0, coll.Len())
	for _, e := range coll.Elements() {
		switch el := e.(type) {
		case binding.Record:
			lines = append(lines, el.String())
		case binding.Scalar:
			lines = append(lines, fmt.Sprintf("%v", el.Value))
		}
	}
	return lines
}
