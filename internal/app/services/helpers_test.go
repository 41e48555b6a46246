package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/auth"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/seed"
)

// newSeededStore returns a store loaded with the demo data set
func newSeededStore() *store.Store {
	s := store.New()
	seed.Populate(s)
	return s
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testAuthz() *auth.AuthorizationService {
	return auth.NewAuthorizationService()
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
