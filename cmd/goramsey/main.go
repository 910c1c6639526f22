package main

import (
	"flag"

	"github.com/plan-systems/klog"

	"github.com/ramsey-systems/goramsey/cmd/goramsey/commands"
)

func main() {

	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	commands.Execute()

	klog.Flush()
}
