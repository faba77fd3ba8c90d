package condition_test

import (
	"fmt"

	"github.com/cwbudde/algo-condition/condition"
)

func ExampleConditioner() {
	c, err := condition.New(
		condition.WithSampleRate(250),
		condition.WithBand(0.5, 40),
		condition.WithOrder(2),
	)
	if err != nil {
		panic(err)
	}

	// One acquisition block: a ramp with a DC offset.
	src := []float32{11, 12, 13, 14, 15}
	out := make([]float32, len(src))

	if err := c.Standardize(out, src); err != nil {
		panic(err)
	}

	fmt.Printf("standardized: [%.2f %.2f %.2f %.2f %.2f]\n",
		out[0], out[1], out[2], out[3], out[4])
	fmt.Printf("sections: %d\n", c.NumSections())

	// Output:
	// standardized: [-1.41 -0.71 0.00 0.71 1.41]
	// sections: 2
}

func ExampleConditioner_Process() {
	c, err := condition.New()
	if err != nil {
		panic(err)
	}

	// Consecutive blocks share filter state: processing a stream block by
	// block is equivalent to processing it in one piece.
	blockA := make([]float32, 125)
	blockB := make([]float32, 125)
	for i := range blockA {
		blockA[i] = float32(i % 10)
		blockB[i] = float32((i + 5) % 10)
	}

	if err := c.Process(blockA, blockA); err != nil {
		panic(err)
	}
	if err := c.Process(blockB, blockB); err != nil {
		panic(err)
	}

	fmt.Printf("state pairs: %d\n", len(c.State()))

	// Output:
	// state pairs: 2
}
