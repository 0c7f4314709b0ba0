package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the liveness endpoint.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

type status struct {
	Status string `json:"status"`
	Mongo  string `json:"mongo"`
}

// ServeHealth reports process and database health.
// GET /health
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	st := status{Status: "ok", Mongo: "ok"}
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Client == nil {
		st.Mongo = "not configured"
	} else if err := h.Client.Ping(ctx, nil); err != nil {
		h.Log.Warn("health ping failed", zap.Error(err))
		st.Status = "degraded"
		st.Mongo = "unreachable"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(st)
}
