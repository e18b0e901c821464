package main

import (
	"arctraders-backend/cmd/arc-cli/cmd"
	"arctraders-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	cmd.Execute()
}
