package covertree_test

import (
	"fmt"
	"log"
	"math"

	"github.com/nearspace/covertree"
)

func Example() {
	tree, err := covertree.Build([]float64{0, 1, 2, 5, 20}, func(a, b float64) float64 {
		return math.Abs(a - b)
	})
	if err != nil {
		log.Fatal(err)
	}

	nearest, err := tree.FindNearest(3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(nearest)
	// Output:
	// 2
}
