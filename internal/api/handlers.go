package api

import "net/http"

func (api *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Server is running successfully!"})
}
