package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

// SessionKeyFromEnv decodes the configured cookie-auth key, generating
// an ephemeral one when none is set so local runs work without a .env.
func SessionKeyFromEnv(env ENV) ([]byte, error) {
	if env.SessionKey == "" {
		key := securecookie.GenerateRandomKey(64)
		if key == nil {
			return nil, fmt.Errorf("could not generate an ephemeral session key")
		}
		return key, nil
	}
	key, err := base64.URLEncoding.DecodeString(env.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode SESSION_KEY from Base64: %w", err)
	}
	return key, nil
}

// GenerateAndPrintSessionKeys prints a fresh SESSION_KEY line ready to
// paste into .env.
func GenerateAndPrintSessionKeys() error {
	key := securecookie.GenerateRandomKey(64)
	if key == nil {
		return fmt.Errorf("error: could not generate session key")
	}

	fmt.Println("================================================")
	fmt.Printf("SESSION_KEY=%s\n", base64.URLEncoding.EncodeToString(key))
	fmt.Println("================================================")
	fmt.Println("Copy this line into your .env file.")
	fmt.Println("Regenerating invalidates existing cart sessions.")
	return nil
}
