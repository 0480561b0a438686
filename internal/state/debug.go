package state

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	debugEnabled = os.Getenv("WORDHUNT_DEBUG") == "1"
	debugFile    = os.Getenv("WORDHUNT_DEBUG_FILE")
	debugMu      sync.Mutex
)

func debugf(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()

	path := debugFile
	if path == "" {
		path = "wordhunt.log"
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s "+format+"\n", append([]interface{}{timestamp}, args...)...)
	_ = f.Close()
}
