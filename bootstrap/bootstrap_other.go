//go:build !windows

package bootstrap

import (
	"fmt"
	"os"
)

func Run(productName, productTitle, productVersion string) {
	fmt.Fprintf(os.Stderr, "%s is only supported on Windows\n", productTitle)
	os.Exit(1)
}
