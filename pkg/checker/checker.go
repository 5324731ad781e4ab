package checker

// Checker verifies a local file against an expected digest.
type Checker interface {
	Check(path string) (bool, error)
}
