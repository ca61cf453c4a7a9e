/*
Package main provides golox, a command line tool to run Lox scripts.

Called with a script file argument, golox runs the script and exits with
a status reflecting the outcome:

    0   success
    64  usage error
    65  static error (scanning, parsing, resolving)
    70  run time error
    74  script or configuration file not readable

Called without a script, golox starts an interactive session. Every input
line is run against the same interpreter, so global definitions survive
between lines. Commands starting with a colon inspect the session:

    :ast <source>   show the syntax tree of source without running it
    :env            list global names
    :help           show the commands

Type "exit" or <ctrl>D to quit.

Flags:

    -trace  Error|Info|Debug   trace level for all golox tracers
    -config file.yaml          load configuration (e.g. maxcalldepth, tracelevel.*)
    -init   script.lox         run a script before going interactive


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'golox.repl'
func tracer() tracing.Trace {
	return tracing.Select("golox.repl")
}
