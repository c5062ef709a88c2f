package document_test

import (
	"fmt"
	"log"

	"github.com/erraggy/svgcase/document"
)

func Example() {
	result, err := document.ParseWithOptions(
		document.WithBytes([]byte(`<svg width="10"><rect stroke-width="2"></rect></svg>`)),
	)
	if err != nil {
		log.Fatal(err)
	}

	root := result.Document.Root
	fmt.Println(root.Name, root.Attrs.Keys())

	rect := root.ChildElements()[0]
	rect.Attrs.Rename("stroke-width", "strokeWidth")

	out, err := document.Marshal(result.Document)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
	// Output:
	// svg [width]
	// <svg width="10"><rect strokeWidth="2"/></svg>
}
