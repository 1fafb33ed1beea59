package cut_test

import (
	"fmt"

	"github.com/hqdem/gatesynth/builder"
	"github.com/hqdem/gatesynth/cut"
	"github.com/hqdem/gatesynth/model"
)

func Example() {
	b := builder.NewBuilder()
	x := b.AddInput()
	y := b.AddInput()
	and := b.AddCell(model.AND, model.NewLink(x), model.NewLink(y))

	ext := cut.NewExtractor(b)
	cuts := ext.Cuts(and)
	fmt.Println(len(cuts) > 0)
	// Output: true
}
