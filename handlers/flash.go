package handlers

import (
	"net/http"

	"productcatalog/logger"
	"productcatalog/models"
	"productcatalog/utils"
)

// FlashCookieName is the cookie that carries the signed flash between requests.
const FlashCookieName = "catalog_flash"

// FlashStore keeps a one-shot flash in a signed cookie.
type FlashStore struct {
	signer *utils.FlashSigner
	secure bool
}

// NewFlashStore creates a FlashStore signing with appKey.
func NewFlashStore(appKey string, secure bool) *FlashStore {
	return &FlashStore{signer: utils.NewFlashSigner(appKey), secure: secure}
}

// Put stores f for the next request.
func (s *FlashStore) Put(w http.ResponseWriter, f models.Flash) {
	token, err := s.signer.Encode(f)
	if err != nil {
		logger.WithFields(map[string]interface{}{"error": err.Error()}).Error("Failed to sign flash")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.FlashTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Take returns the pending flash, if any, and clears it.
func (s *FlashStore) Take(w http.ResponseWriter, r *http.Request) models.Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return models.Flash{}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	flash, err := s.signer.Decode(cookie.Value)
	if err != nil {
		logger.WithFields(map[string]interface{}{"error": err.Error()}).Debug("Discarding invalid flash cookie")
		return models.Flash{}
	}
	return flash
}
