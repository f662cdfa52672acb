package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
)

const (
	deviceIDHeader  = "X-Device-ID"
	integrityHeader = "X-Integrity-Token"
)

// Integrity verifies the device attestation token: an HMAC-SHA256 of
// the device ID under the shared secret, issued to clients that passed
// the compromise check. An empty secret disables the gate.
func Integrity(secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			deviceID := r.Header.Get(deviceIDHeader)
			token := r.Header.Get(integrityHeader)
			if deviceID == "" || token == "" {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			if !VerifyToken(secret, deviceID, token) {
				logger.Warn("integrity check failed", slog.String("device_id", deviceID))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func VerifyToken(secret, deviceID, token string) bool {
	want := ComputeToken(secret, deviceID)
	return hmac.Equal([]byte(want), []byte(token))
}

func ComputeToken(secret, deviceID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(deviceID))
	return hex.EncodeToString(mac.Sum(nil))
}
