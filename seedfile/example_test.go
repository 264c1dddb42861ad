package seedfile_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/adjset/seedfile"
)

// ExampleDecode seeds a graph from a document, then writes it back out.
func ExampleDecode() {
	doc, err := seedfile.Decode(strings.NewReader(`
entries:
  x: [y]
  y: [x]
edges:
  - [y, z]
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := doc.Graph()
	fmt.Println("check:", g.Check())
	_ = seedfile.Encode(os.Stdout, g)
	// Output:
	// check: <nil>
	// entries:
	//   x: [y]
	//   y: [x, z]
	//   z: [y]
}
