package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"go-pray-cache/internal/cache"
	"go-pray-cache/internal/models"
)

// handleInvalidate evicts a single entity
func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	var req InvalidateRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	prefix := models.Prefix(req.Entity)
	invalidate, err := s.entityInvalidation(prefix, req.IDs)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := invalidate(r.Context()); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Invalidation failed: %v", err), statusFor(err))
		return
	}

	key, _ := cache.BuildKey(prefix, req.IDs...)
	s.logger.Debug("Invalidated entity", zap.String("entity", req.Entity), zap.String("key", key))
	s.writeJSON(w, http.StatusOK, &InvalidateResponse{Success: true, Key: key})
}

// entityInvalidation picks the invalidation for an entity and checks its id count
func (s *Server) entityInvalidation(prefix models.Prefix, ids []string) (func(context.Context) error, error) {
	want := 1
	if prefix == models.PrefixMembership {
		want = 2
	}
	if len(ids) != want {
		return nil, fmt.Errorf("entity %q takes %d id(s), got %d", string(prefix), want, len(ids))
	}

	switch prefix {
	case models.PrefixGroup:
		return func(ctx context.Context) error { return s.invalidator.InvalidateGroup(ctx, ids[0]) }, nil
	case models.PrefixUser:
		return func(ctx context.Context) error { return s.invalidator.InvalidateUser(ctx, ids[0]) }, nil
	case models.PrefixPrayerStats:
		return func(ctx context.Context) error { return s.invalidator.InvalidatePrayerStats(ctx, ids[0]) }, nil
	case models.PrefixMembership:
		return func(ctx context.Context) error { return s.invalidator.InvalidateMembership(ctx, ids[0], ids[1]) }, nil
	}
	return nil, fmt.Errorf("unknown entity %q", string(prefix))
}

// handleInvalidatePrefix evicts every entry under a prefix
func (s *Server) handleInvalidatePrefix(w http.ResponseWriter, r *http.Request) {
	var req InvalidatePrefixRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	deleted, err := s.invalidator.InvalidateByPrefix(r.Context(), models.Prefix(req.Prefix))
	if err != nil {
		s.writeJSON(w, statusFor(err), &InvalidateResponse{
			Success: false,
			Deleted: &deleted,
			Error:   fmt.Sprintf("Prefix invalidation failed: %v", err),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, &InvalidateResponse{Success: true, Deleted: &deleted})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, cache.ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, cache.ErrBackendUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
