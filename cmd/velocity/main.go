// Command velocity converts and adds speeds given in miles per hour,
// kilometers per hour or meters per second.
//
//	velocity convert 10 --from mph --to kph
//	velocity sum 10:mph 16.0934:kph --to mph
//	velocity units
//
// Every flag can also be set through the environment with a VELOCITY_
// prefix, for example VELOCITY_TO=mps or VELOCITY_LOG_LEVEL=debug.
package main

import (
	"context"
	"os"

	"github.com/amp-labs/amp-tagged/cli"
)

func main() {
	a := &app{prompt: cli.PromptFloat, choose: cli.Select}

	if err := newRootCmd(a).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
