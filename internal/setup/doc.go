// Package setup runs the post-install steps for an installation directory.
//
// A run resolves the OS family and, on linux, the distribution; merges the
// properties for that platform; then executes a fixed plan of render and copy
// actions in order. The first failing action aborts the run. Files already
// written stay in place.
//
// Plan is pure and can be printed without touching the filesystem:
//
//	for _, a := range setup.Plan(platform.FamilyDarwin, platform.DistroUnknown) {
//		fmt.Println(a)
//	}
package setup
