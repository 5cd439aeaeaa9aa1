package balance_test

import (
	"fmt"

	"github.com/katalvlaran/balancedforest/balance"
)

// ExampleSolve answers the five-node sample: cutting above nodes 3 and 4
// leaves {3, 3, 1}; a new node of weight 2 joins the lightest component.
func ExampleSolve() {
	weights := []int64{1, 2, 2, 1, 1}
	edges := [][2]int{{1, 2}, {1, 3}, {3, 5}, {1, 4}}

	answer, err := balance.Solve(weights, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(answer)
	// Output: 2
}

// ExampleAnalyze shows the winning forest behind an answer.
func ExampleAnalyze() {
	res, err := balance.Analyze([]int64{0, 3, 3, 3}, [][2]int{{1, 2}, {1, 3}, {1, 4}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Answer, res.Feasible, res.Forest.Weights())
	// Output: 0 true [3 3 3]
}
