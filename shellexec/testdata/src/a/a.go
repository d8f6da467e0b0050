package a

import (
	"context"
	"os/exec"
)

const script = "make all"

func run(ctx context.Context, name string, args []string) {
	_ = exec.Command("sh", "-c", "tar xf "+name)                 // want `\[LK1008 critical\] sh runs a command string built at run time`
	_ = exec.CommandContext(ctx, "/bin/bash", "-c", name)        // want `/bin/bash runs a command string`
	_ = exec.Command(`C:\Windows\System32\cmd.exe`, "/C", name) // want `cmd.exe runs a command string`
	_ = exec.Command("pwsh", "-Command", name, "extra")          // want `pwsh runs`

	_ = exec.Command("sh", "-c", script)
	_ = exec.Command("sh", "-c", "ls "+"-l")
	_ = exec.Command("tar", "xf", name)
	_ = exec.Command("sh", args...)
	_ = exec.Command("sh", name)
	_ = exec.Command(name, "-c", name)
}
