// Package green is the process-wide assertion facade.
//
// Assertions record into a lazily created default recorder and are
// attributed to the first caller outside this package:
//
//	green.Assert(1 < 2)
//	green.Assert("a", "a")
//	green.Assert([]int{1, 2}, "any", 2)
//	green.AssertError("fs.PathError", func() error { _, err := os.Open("x"); return err })
//	defer green.Finalize()
//
// The default renderer is chosen from the host: text on terminals and
// command-line processes, HTML under a web gateway.
package green
