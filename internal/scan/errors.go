package scan

import "fmt"

// InvalidRootError is returned when a scan root does not exist or is not a
// directory. It is fatal for that root only; sibling roots are unaffected.
type InvalidRootError struct {
	Path string
	Err  error
}

func (err InvalidRootError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("invalid scan root %s: %v", err.Path, err.Err)
	}

	return fmt.Sprintf("invalid scan root %s: not a directory", err.Path)
}

func (err InvalidRootError) Unwrap() error {
	return err.Err
}
