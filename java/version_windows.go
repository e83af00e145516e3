package java

import (
	"os/exec"

	"github.com/rocketsoftware/find-java/utils"
	"github.com/rocketsoftware/find-java/utils/log"
)

// queryVersion runs "<javaPath>" -version in a hidden window and reports
// whether it exited with status 0. A spawn failure counts as "not Java".
// The call blocks until the child exits; there is no timeout, so a hung
// candidate blocks discovery (known limitation, acceptable for an
// on-demand tool).
//
// TODO: capture the child's stderr and parse the `java version "1.6.0_29"`
// line so callers can get an actual version value.
func queryVersion(javaPath string) bool {
	cmd := exec.Command(javaPath, "-version")
	utils.HideWindow(cmd)
	log.Debugf("running %s -version", utils.QuoteString(javaPath))
	return cmd.Run() == nil
}
