package observability

import (
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/M0nkiiii/Screentime-Management/pkg/logger"
)

// StartProfiling exposes pprof on a dedicated port when PPROF_ADDR is set
// (for example ":6060"). It is a no-op otherwise, so production builds pay
// nothing unless explicitly enabled.
func StartProfiling(service string) {
	addr := os.Getenv("PPROF_ADDR")
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	go func() {
		logger.Infof("pprof listening service=%s addr=%s", service, addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Errorf("pprof server exited service=%s error=%v", service, err)
		}
	}()
}
