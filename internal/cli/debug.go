package cli

import (
	"fmt"
	"os"
)

const envDebug = "VROOM_DEBUG"

// debugf writes a trace line to stderr when VROOM_DEBUG is set.
func debugf(format string, args ...any) {
	if os.Getenv(envDebug) == "" {
		return
	}
	fmt.Fprintf(stderr, "vroom: debug: "+format+"\n", args...)
}
