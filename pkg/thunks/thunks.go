// Package thunks contains pointers to functions that might be replaced in
// tests.
package thunks

import (
	"os"
)

// UserHomeDir is an alias for os.UserHomeDir
var UserHomeDir func() (string, error) = os.UserHomeDir

// SetUpTest replaces thunks with versions rooted at home. Call the returned
// function to restore the originals.
func SetUpTest(home string) (restore func()) {
	orig := UserHomeDir
	UserHomeDir = func() (string, error) {
		return home, nil
	}
	return func() {
		UserHomeDir = orig
	}
}
