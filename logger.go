package citytowers

import "log"

// Logf receives progress messages: grid seeds, each optimizer placement and
// why a run stopped. Writes go to the standard logger until SetLogger says
// otherwise.
var Logf = log.Printf

// SetLogger routes progress messages to f, or drops them when f is nil.
func SetLogger(f func(format string, v ...interface{})) {
	if f != nil {
		Logf = f
		return
	}
	Logf = func(string, ...interface{}) {}
}
