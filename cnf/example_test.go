package cnf_test

import (
	"fmt"

	"github.com/ava12/cfg/cnf"
	"github.com/ava12/cfg/langdef"
)

func ExampleConvert() {
	g, e := langdef.ParseString("example", "S -> a S b | ε")
	if e != nil {
		fmt.Println(e)
		return
	}

	fmt.Println(cnf.Convert(g))
	fmt.Println(cnf.IsCNF(cnf.Convert(g)))
	// Output:
	// C1 -> S T_b | b
	// S -> T_a C1
	// S0 -> ε | T_a C1
	// T_a -> a
	// T_b -> b
	// <nil>
}
