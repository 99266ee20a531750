package fraction_test

import (
	"fmt"
	"strings"

	"github.com/agbru/fraccalc/internal/fraction"
)

func Example() {
	a := fraction.MustNew(1, 2)
	b := fraction.MustNew(1, 3)

	sum, _ := a.Add(b)
	diff, _ := a.Sub(b)
	fmt.Println(sum, diff, a.Greater(b))
	// Output: 5/6 1/6 true
}

func ExampleFromFloat() {
	f, _ := fraction.FromFloat(0.3333)
	g, _ := fraction.FromFloat(0.5)
	fmt.Println(f, g)
	// Output: 333/1000 1/2
}

func ExampleFraction_PostInc() {
	a := fraction.MustNew(1, 2)
	old, _ := a.PostInc()
	fmt.Println(old, a)
	// Output: 1/2 3/2
}

func ExampleRead() {
	f, err := fraction.Read(strings.NewReader("6 -8"))
	fmt.Println(f, err)
	// Output: -3/4 <nil>
}

func ExampleFloatApply() {
	f, _ := fraction.FloatApply(fraction.OpDiv, 2, fraction.MustNew(1, 2))
	fmt.Println(f)
	// Output: 4/1
}
