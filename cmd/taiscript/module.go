package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taiscript/debugs"
	"github.com/reusee/taiscript/programs"
)

type Module struct {
	dscope.Module
	Programs programs.Module
	Debugs   debugs.Module
}
