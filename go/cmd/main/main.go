package main

import (
	"github.com/Dcraftbg/vx86/go/cmd"

	_ "github.com/Dcraftbg/vx86/go/cmd/run"

	_ "github.com/Dcraftbg/vx86/go/cmd/dis"
	_ "github.com/Dcraftbg/vx86/go/cmd/trace"
)

func main() { cmd.Main() }
