// SPDX-License-Identifier: MIT

package commands

import "github.com/katalvlaran/fastmul/multiply"

// labels are the human-readable algorithm names used in demo output.
var labels = map[multiply.Algorithm]string{
	multiply.AlgClassic:         "Classic multiplication",
	multiply.AlgStrassenStatic:  "Strassen <2, 2, 2> (static)",
	multiply.AlgStrassenDynamic: "Strassen <2, 2, 2> (dynamic)",
	multiply.AlgLaderman:        "Laderman <3, 3, 3>",
	multiply.AlgBiniExact:       "Bini <2, 2, 3> (exact)",
	multiply.AlgBiniApprox:      "Bini <2, 2, 3> (approx)",
	multiply.AlgSchonhageExact:  "Schonhage <3, 3, 3> (exact)",
	multiply.AlgSchonhageApprox: "Schonhage <3, 3, 3> (approx)",
}

func label(alg multiply.Algorithm) string {
	if l, ok := labels[alg]; ok {
		return l
	}

	return alg.String()
}
