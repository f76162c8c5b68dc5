package nodes_test

import (
	"fmt"

	"github.com/katalvlaran/cfgsched/nodes"
)

func ExampleRegistry_RunCurve() {
	r := nodes.Default()
	out, err := r.RunCurve("parametric peak #1", nodes.Values{"steps": 6, "peak": 0.5, "warmup": 0, "decay": 0}, nil)
	if err != nil {
		panic(err)
	}
	for _, v := range out[0] {
		fmt.Printf("%.2f ", v)
	}
	fmt.Println()
	// Output:
	// 0.00 0.33 0.67 1.00 0.67 0.33
}

func ExampleSpec_Validate() {
	spec, _ := nodes.Default().Lookup(nodes.NodeScheduledCFG)
	_, err := spec.Validate(nodes.Values{"cfg_max": 250})
	fmt.Println(err != nil)
	// Output:
	// true
}
