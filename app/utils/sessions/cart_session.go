package sessions

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionCartKey   = "cart_session"
	CartSessionIDKey = "cart_id"
)

// Store is the cookie-backed session store holding each browser's cart
// id. Built once in main from the configured session key.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(sessionKey []byte) *Store {
	store := sessions.NewCookieStore(sessionKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: store}
}

// GetCartID returns the browser's cart id, minting and persisting a new
// one on first contact.
func (s *Store) GetCartID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := s.cookies.Get(r, SessionCartKey)
	if err != nil {
		// A stale or tampered cookie decodes to a fresh session; fall
		// through and mint a new cart id.
		session, _ = s.cookies.New(r, SessionCartKey)
	}

	if cartID, ok := session.Values[CartSessionIDKey].(string); ok && cartID != "" {
		return cartID, nil
	}

	newCartID := uuid.New().String()
	session.Values[CartSessionIDKey] = newCartID
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return newCartID, nil
}
