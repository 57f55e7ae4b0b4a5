package svgxform

import "fmt"

func fmtMatrix(a, b, c, d, e, f float64) string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", a, b, c, d, e, f)
}
