// Package mocks provides generated mock implementations for the auth ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks.
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	auth := mocks.NewMockAuthenticator(ctrl)
//	auth.EXPECT().Login(gomock.Any(), "user", "pass").Return(result, nil)
package mocks

// Generate mock for the Authenticator interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=authenticator_mock.go github.com/bluemoon-pm/bluemoon-ui/internal/ports Authenticator

// Generate mock for the SessionStore interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/bluemoon-pm/bluemoon-ui/internal/ports SessionStore
