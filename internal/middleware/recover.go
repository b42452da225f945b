package middleware

import (
	"fmt"
	"net/http"

	m "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Recover turns a handler panic into a 500 and logs it. The stack is printed
// only at debug level.
func Recover(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					log.WithFields(logrus.Fields{
						"request_id": m.GetReqID(r.Context()),
						"panic":      fmt.Sprint(rvr),
					}).Error("Recovered from handler panic")
					if log.IsLevelEnabled(logrus.DebugLevel) {
						m.PrintPrettyStack(rvr)
					}
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
