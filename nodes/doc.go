// Package nodes describes the sigma, scheduler and guider nodes a sampling
// host exposes, and executes them against the cfgsched packages.
//
// What & Why:
//
//	A node host shows each operation as a box with typed input sockets and
//	scalar widgets. Spec captures that surface (names, kinds, defaults,
//	ranges) once, and everything else is derived from it:
//	  • Schema   - an OpenAPI 3 object schema of the scalar parameters.
//	  • Validate - defaults applied, then schema validation at the boundary,
//	               so the algorithms below can assume sane inputs.
//	  • RunCurve - pure SIGMAS-producing nodes (curve schedulers, transforms).
//	  • BuildGuider - the two scheduled CFG guider nodes.
//
// Lookup:
//
//	Node names are matched after NFKC normalization and case folding, so
//	"k/x scheduler", "K/X Scheduler" and full-width variants resolve alike.
//
// YAML:
//
//	MarshalCatalogYAML dumps every Spec; UnmarshalPreset reads a preset
//	(node, values, inputs) for the sigmacurve CLI.
package nodes
