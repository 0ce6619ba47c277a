// Package systems provides the 2×2 test systems fed to the solvers: the three
// built-in reference systems and a loader for additional ones stored as JSON.
//
// Reference systems share the exact solution (−1, −1) and their coefficient
// columns get progressively closer to parallel, so each one is worse
// conditioned than the previous.
//
// File format (format is a semantic version, currently ^1.0.0):
//
//	{
//	  "format": "1.0.0",
//	  "systems": [
//	    {"name": "tilted", "a": [[1, 2], [3, 4]], "b": [-3, -7]},
//	    {"name": "shifted", "a": [[2, 0], [0, 2]], "b": [2, 4], "exact": [1, 2]}
//	  ]
//	}
//
// A missing "exact" means (−1, −1).
package systems
