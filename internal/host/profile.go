package host

import (
	"log"
	"net/http"
	_ "net/http/pprof"
)

// StartProfiler serves net/http/pprof on addr in the background. An empty
// addr does nothing.
func StartProfiler(addr string) {
	if addr == "" {
		return
	}
	go func() {
		log.Println(http.ListenAndServe(addr, nil))
	}()
}
