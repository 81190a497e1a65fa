// Package converters provides two-way adapters between *matrix.Dense and
// popular Go numeric libraries:
//   - gonum.org/v1/gonum/mat (ToGonum, FromGonum)
//   - gorgonia.org/tensor    (ToTensor, FromTensor)
//
// Every adapter copies: the returned value never shares storage with its
// input, in line with the ownership rules of package matrix.
package converters
