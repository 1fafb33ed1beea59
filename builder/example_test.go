package builder_test

import (
	"fmt"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/model"
)

func Example() {
	b := builder.NewBuilder()
	x := b.AddInput()
	y := b.AddInput()
	and := b.AddCell(model.AND, model.NewLink(x), model.NewLink(y))
	b.AddOutput(model.NewLink(and))

	sn := b.Make(true)
	fmt.Println(sn.NumIn, sn.NumOut, len(sn.Entries))
	// Output: 2 1 4
}
