// SPDX-License-Identifier: MIT

// Command sigmacurve evaluates a curve or sigma node and prints the
// resulting sequence, optionally with the guidance-scale table a scheduled
// CFG guider would derive from it.
//
//	sigmacurve -node "Parametric Peak #1" -set steps=30 -set peak=0.4
//	sigmacurve -config preset.yaml -format yaml
//	sigmacurve -node ScaleToRange -input sigmas=14.6,7.3,0 -set sigma_max=1
//	sigmacurve -node ArctanScheduler -interactive -cfg-max 9 -cfg-min 2
//	sigmacurve -list
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sigmacurve: ")

	opts := options{}
	fs := flag.NewFlagSet("sigmacurve", flag.ExitOnError)
	opts.register(fs)
	_ = fs.Parse(os.Args[1:])
	opts.markSet(fs)

	var p prompter
	if opts.interactive {
		p = surveyPrompter{}
	}

	if err := run(opts, os.ReadFile, p, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
