package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// APIResponse is the envelope every endpoint speaks: `success` is always
// present, `msg` is set on failures and informational successes.
type APIResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
}

// RespondError writes the {success:false, msg} failure envelope. The message
// is the public, client-facing string; devErrs are only logged.
func RespondError(w http.ResponseWriter, status int, publicMessage string, devErrs ...error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Msg:     publicMessage,
	})

	// devErr is optional; only handle if provided
	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}

// RespondWithJSON for successful cases
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
