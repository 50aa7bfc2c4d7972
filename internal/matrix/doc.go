// Package matrix computes the build matrix of interpreter and library
// versions.
//
// Two version axes are configured at startup: the interpreter versions and
// the geospatial library versions the project is tested against. The matrix
// is their exact Cartesian product, enumerated in nested iteration order
// (interpreter outer, library inner). Each pair is rendered as a combination
// tag such as "3.8-3" that keys a per-environment lock file.
//
// Generation is a pure function of its inputs: given the same version sets
// it always produces the same combinations in the same order.
//
// Example usage:
//
//	combos, err := matrix.Generate(
//	    matrix.VersionSet{"3.6", "3.7"},
//	    matrix.VersionSet{"2.4", "3"},
//	)
//	if err != nil {
//	    return err
//	}
//
//	for _, c := range combos {
//	    fmt.Println(c.Tag()) // 3.6-2.4, 3.6-3, 3.7-2.4, 3.7-3
//	}
package matrix
