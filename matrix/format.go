// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgeom/scalar"
)

// formatSquare renders an n×n matrix row by row, e.g. "Mat2[[1 3] [2 4]]".
// at(c, r) must return the element in column c, row r.
func formatSquare[T scalar.Number](name string, n int, at func(c, r int) T) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('[')
	var r, c int
	for r = 0; r < n; r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for c = 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, at(c, r))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
