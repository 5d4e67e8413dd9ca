package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/runs"
	"github.com/reusee/taibf/sources"
)

type Module struct {
	dscope.Module
	Sources sources.Module
	Runs    runs.Module
	Debugs  debugs.Module
}
