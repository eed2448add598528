package determinant_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cofactor/determinant"
	"github.com/katalvlaran/cofactor/matrix"
)

// ExampleSarrus evaluates the 3×3 base case directly.
func ExampleSarrus() {
	m, _ := matrix.NewDenseFromRows([][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})

	det, err := determinant.Sarrus(m)
	fmt.Println(det, err)

	// Output:
	// -3 <nil>
}

// ExampleSequential expands a diagonal 4×4 along its bottom row.
func ExampleSequential() {
	m, _ := matrix.NewDenseFromRows([][]int64{
		{2, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 5},
	})

	det, _ := determinant.Sequential(m)
	fmt.Println(det)

	// Output:
	// 120
}

// ExampleParallel fans out at every level and reports how the work was
// scheduled.
func ExampleParallel() {
	m, _ := matrix.NewDenseFromRows([][]int64{
		{1, 1, 1, 1, 1},
		{1, 2, 4, 8, 16},
		{1, 3, 9, 27, 81},
		{1, 4, 16, 64, 256},
		{1, 5, 25, 125, 625},
	})

	var st determinant.Stats
	det, _ := determinant.Parallel(m,
		determinant.WithSequentialCutoff(3),
		determinant.WithUnboundedFanOut(),
		determinant.WithStats(&st),
	)
	fmt.Println(det)
	fmt.Printf("tasks=%d levels=%d leaves=%d\n", st.Spawned, st.Levels, st.SequentialFallbacks)

	// Output:
	// 288
	// tasks=25 levels=6 leaves=20
}

// ExampleParallel_overflow shows that results outside int64 are reported,
// never wrapped.
func ExampleParallel_overflow() {
	big := int64(1) << 32
	m, _ := matrix.NewDenseFromRows([][]int64{
		{big, 0, 0, 0},
		{0, big, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})

	_, err := determinant.Parallel(m)
	fmt.Println(errors.Is(err, determinant.ErrArithmeticOverflow))

	// Output:
	// true
}
