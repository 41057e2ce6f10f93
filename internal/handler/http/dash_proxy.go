package http

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/utils"
)

// dashProxy hands /dash/* traffic off to the external analytics service.
// The upstream is trusted infrastructure on a private network; requests are
// forwarded as-is, and an unreachable upstream surfaces as 502 rather than
// a hung request.
func (h *Handler) dashProxy() http.Handler {
	upstream, err := url.Parse(h.cfg.Dash.UpstreamURL)
	if err != nil {
		h.logger.Err(err).Str("upstream", h.cfg.Dash.UpstreamURL).Msg("invalid dash upstream URL, proxy disabled")
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteMessage(w, "analytics service not configured", http.StatusBadGateway)
		})
	}

	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.FromRequest(r).Err(err).Msg("dash upstream unreachable")
		utils.WriteMessage(w, "analytics service unavailable", http.StatusBadGateway)
	}

	return proxy
}
