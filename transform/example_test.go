package transform_test

import (
	"fmt"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
	"github.com/hqdem/gatesynth/transform"
)

// Example runs a rewrite pass over a 3-input AND built as two inefficient
// binary cells and prints the gate count before and after.
func Example() {
	b := builder.NewBuilder()
	x0 := b.AddInput()
	x1 := b.AddInput()
	x2 := b.AddInput()
	e1 := b.AddCell(model.AND, model.NewLink(x0), model.NewLink(x1))
	e2 := b.AddCell(model.AND, model.NewLink(e1), model.NewLink(x2))
	b.AddOutput(model.NewLink(e2))

	before := b.Make(true)
	t := transform.NewTransformer(b)
	if err := t.RunPass(transform.Rewrite(4, false)); err != nil {
		fmt.Println(err)
		return
	}
	after := b.Make(true)

	fmt.Println(len(before.Entries)-before.NumIn-before.NumOut, len(after.Entries)-after.NumIn-after.NumOut)
	// Output:
	// 2 1
}
