package format

import (
	"fmt"
	"time"
)

// Duration formats d for the evaluation timings shown by the REPL and the
// terminal UI: microseconds below a millisecond, milliseconds below a
// second, and time.Duration's own form otherwise.
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
