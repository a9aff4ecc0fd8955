package handlers

import (
	"errors"
	"log"
	"net/http"

	"salestrack/internal/auth"
	"salestrack/internal/config"
	"salestrack/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler bundles what every route needs: the data access layer, the token
// issuer and the startup configuration.
type Handler struct {
	Store  *store.Store
	Tokens *auth.Tokens
	Cfg    config.Config
}

// New constructs a Handler.
func New(st *store.Store, tokens *auth.Tokens, cfg config.Config) *Handler {
	return &Handler{Store: st, Tokens: tokens, Cfg: cfg}
}

// fail maps a domain error onto its fixed status. Unrecognized errors are
// logged with full detail and reported as a generic 500 so storage internals
// never leak to the client.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// actor pulls the authenticated user id out of the request context, nil on
// unauthenticated routes.
func actor(c *gin.Context) *uint {
	v, exists := c.Get("userID")
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
