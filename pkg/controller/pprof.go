package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where RegisterPprof mounts the profiling handlers.
const PprofPrefix = "/debug/pprof/"

// RegisterPprof mounts the net/http/pprof handlers on mux under PprofPrefix.
// Named profiles such as heap or goroutine are served by the index handler.
func RegisterPprof(mux *http.ServeMux) {
	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)
}
