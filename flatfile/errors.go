package flatfile

import "fmt"

type (
	// UnavailableStore reports a record file that could not be read or
	// appended to. Callers must be able to tell this apart from a file
	// that simply holds no matching records.
	UnavailableStore struct {
		Path  string
		cause error
	}
)

func (u UnavailableStore) Error() string {
	return fmt.Sprintf("record store %v is unavailable, cause %v", u.Path, u.cause)
}

func (u UnavailableStore) Unwrap() error { return u.cause }
