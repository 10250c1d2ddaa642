package domain

// TestID identifies a single discovered test by its dotted name.
// Names are unique within a run and ordered by discovery.
type TestID struct {
	Name   string // full dotted name, e.g. "scheduler.test_scheduler.TestScheduler.test_single"
	File   string // path to the source file the test was discovered in
	Module string // dotted module part of Name (file path relative to the test root)
	Class  string // class name, empty for module-level test functions
	Method string // method or function name
}

// NewTestID builds a TestID from its parts. Class may be empty for
// module-level test functions.
func NewTestID(file, module, class, method string) TestID {
	name := module + "." + method
	if class != "" {
		name = module + "." + class + "." + method
	}
	return TestID{
		Name:   name,
		File:   file,
		Module: module,
		Class:  class,
		Method: method,
	}
}
