// Package controller contains HTTP middlewares and helper handlers used by the ops server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecover: Turns a handler panic into a logged 500 response.
//
// Provided helpers:
//   - Health: Reports whether the dependencies of the process are reachable.
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
