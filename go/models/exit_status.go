package models

import "fmt"

// ExitStatus is returned by commands that want a specific process exit code.
type ExitStatus int

func (e ExitStatus) Error() string {
	return fmt.Sprintf("exit %d", e)
}
