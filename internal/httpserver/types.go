package httpserver

// InvalidateRequest evicts one entity from the cache.
// Membership takes the user id then the group id; every other entity takes a single id.
type InvalidateRequest struct {
	Entity string   `json:"entity" validate:"required,oneof=group user membership prayer_stats"`
	IDs    []string `json:"ids" validate:"required,min=1,max=2,dive,required"`
}

// InvalidatePrefixRequest evicts every entry under a prefix
type InvalidatePrefixRequest struct {
	Prefix string `json:"prefix" validate:"required"`
}

// InvalidateResponse represents the outcome of an invalidation
type InvalidateResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key,omitempty"`
	Deleted *int   `json:"deleted,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse reports the state of the cache tiers
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
	Time   string            `json:"time"`
}
