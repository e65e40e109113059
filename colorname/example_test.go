package colorname_test

import (
	"fmt"
	"log"

	"github.com/nearspace/covertree/color"
	"github.com/nearspace/covertree/colorname"
)

func Example() {
	src := colorname.Empty(colorname.WithMetric(color.RGBDistance))
	src.Add("black", color.FromHexCode(0x000000))
	src.Add("white", color.FromHexCode(0xFFFFFF))
	src.Add("crimson", color.FromHexCode(0xDC143C))

	name, err := src.NearestName(color.FromHexCode(0xD01030))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(name)
	// Output:
	// CRIMSON
}
