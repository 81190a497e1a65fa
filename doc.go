// Package densela is a small dense linear-algebra toolkit: a real-valued
// matrix type with strict shape checks, exact equality, and a pretty printer.
//
// 🚀 What is in the box?
//
//   - Dense matrices: build from rows, read and replace rows, copy-safe accessors
//   - Arithmetic: addition, scalar and matrix multiplication, transpose
//   - Determinant: Gaussian elimination with partial pivoting
//   - Rendering: bracketed grids with aligned fixed-point cells
//   - Converters: round-trips with gonum/mat and gorgonia/tensor
//
// ✨ Guarantees
//
//   - No aliasing – every matrix owns its storage; results are always fresh copies
//   - Fail fast – shape problems surface as sentinel errors, matched with errors.Is
//   - Deterministic – fixed loop orders, bit-reproducible results
//
// Packages:
//
//	matrix/      Dense type, kernels, determinant, rendering
//	converters/  gonum and gorgonia adapters
//
// Quick example:
//
//	a, _ := matrix.NewDense([][]float64{{1, 2}, {3, 4}})
//	fmt.Println(a)
//
//	⎡ 1.00 2.00 ⎤
//	⎣ 3.00 4.00 ⎦
//
//	go get github.com/katalvlaran/densela
package densela
