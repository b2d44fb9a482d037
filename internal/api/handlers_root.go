package api

import "net/http"

// StatusMessage is the fixed payload served at the root endpoint.
const StatusMessage = "✅ Backend up & running with LiteFS!"

// Root returns the fixed service status payload.
// @Summary      Service status
// @Tags         status
// @Produce      json
// @Success      200  {object} object{message=string}
// @Router       / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": StatusMessage})
}
