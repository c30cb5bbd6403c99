// Command opsctl runs operator tasks against the ops portal database and
// exposes the flight estimators on the command line.
package main

import (
	"context"
	"os"

	"skyward/opsportal/internal/logging"
)

func main() {
	defer logging.Close()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
