package http

import (
	"net/http"
)

func (h *Handler) getAppBuildInfo(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppBuildInfo(r.Context())
	writeJSON(w, http.StatusOK, buildInfo)
}
