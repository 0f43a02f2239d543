package handlers

import (
	"vibe-eats/store"

	"go.uber.org/zap"
)

// Handler bundles the dependencies the HTTP handlers share. The store is an
// interface so tests can swap in a fake.
type Handler struct {
	Store store.UserStore
	Log   *zap.Logger
}

func New(s store.UserStore, log *zap.Logger) *Handler {
	return &Handler{Store: s, Log: log}
}
