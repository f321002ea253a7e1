// Package all registers all shell commands.
package all

import (
	_ "github.com/robotalks/xy2.go/pkg/cli/cmds/codec"
	_ "github.com/robotalks/xy2.go/pkg/cli/cmds/frames"
)
