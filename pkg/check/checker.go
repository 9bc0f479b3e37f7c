package check

// Checker is implemented by all check types.
// Each check reads something and returns a Result indicating
// success or failure.
//
// Implementations:
//   - contentcheck.Check: reads a file and inspects its contents
type Checker interface {
	Run() Result
}
