package logs

import (
	"io"
	"os"

	"github.com/reusee/bftape/cmds"
)

type Writer io.Writer

var logFile = cmds.Var[string]("-log-file", "append logs to file instead of stderr")

// Writer keeps program output on stdout free of log records.
func (Module) Writer() Writer {
	if !logFile.IsSet {
		return os.Stderr
	}
	f, err := os.OpenFile(logFile.Value, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	return f
}
