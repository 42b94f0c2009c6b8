// Package server implements the HTTP API for sparse matrix operations.
//
// The API accepts matrices in the same text format the CLI reads from disk,
// carried inside a small JSON envelope:
//
//	POST /v1/add      {"a": "rows=2\ncols=2\n...", "b": "..."}
//	POST /v1/subtract
//	POST /v1/multiply
//
// Successful responses return the serialized result plus its dimensions and
// non-zero count. Malformed matrices map to 400, incompatible shapes to 422.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/jharmer/spmat/pkg/sparse"
)

// Server exposes matrix operations over HTTP. It holds no matrix state of
// its own; every request is parsed, computed, and serialized independently.
type Server struct {
	logger *log.Logger
}

// New creates a Server that logs through the given logger.
func New(logger *log.Logger) *Server {
	return &Server{logger: logger}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/add", s.handleOp("add", sparse.Add))
		r.Post("/subtract", s.handleOp("subtract", sparse.Sub))
		r.Post("/multiply", s.handleOp("multiply", sparse.Mul))
	})

	return r
}

// requestID tags each request with a UUID and logs method, path, and ID.
// The ID is echoed in the X-Request-Id response header so clients can
// correlate server logs with their calls.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		s.logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// opRequest is the JSON envelope for a binary operation: both operands in
// the serialized matrix text format.
type opRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// opResponse carries the serialized result and summary stats.
type opResponse struct {
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	NNZ    int    `json:"nnz"`
	Result string `json:"result"`
}

// errResponse is the JSON error envelope.
type errResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// handleOp builds the handler for one binary operation.
func (s *Server) handleOp(name string, op func(a, b *sparse.Matrix) (*sparse.Matrix, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req opRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body: "+err.Error())
			return
		}

		a, err := sparse.Parse(req.A)
		if err != nil {
			writeOpError(w, "matrix a: ", err)
			return
		}
		b, err := sparse.Parse(req.B)
		if err != nil {
			writeOpError(w, "matrix b: ", err)
			return
		}

		result, err := op(a, b)
		if err != nil {
			writeOpError(w, "", err)
			return
		}

		rows, cols := result.Dims()
		s.logger.Info("computed", "op", name, "rows", rows, "cols", cols, "nnz", result.NNZ())
		writeJSON(w, http.StatusOK, opResponse{
			Rows:   rows,
			Cols:   cols,
			NNZ:    result.NNZ(),
			Result: result.String(),
		})
	}
}

// errKinds maps core sentinel errors to wire-level kinds and HTTP statuses.
var errKinds = []struct {
	err    error
	kind   string
	status int
}{
	{sparse.ErrMalformedHeader, "malformed_header", http.StatusBadRequest},
	{sparse.ErrMalformedEntry, "malformed_entry", http.StatusBadRequest},
	{sparse.ErrEntryOutOfBounds, "entry_out_of_bounds", http.StatusBadRequest},
	{sparse.ErrDimensionMismatch, "dimension_mismatch", http.StatusUnprocessableEntity},
}

// writeOpError translates a core error into the JSON error envelope.
func writeOpError(w http.ResponseWriter, prefix string, err error) {
	for _, k := range errKinds {
		if errors.Is(err, k.err) {
			writeError(w, k.status, k.kind, prefix+err.Error())
			return
		}
	}
	writeError(w, http.StatusInternalServerError, "internal", prefix+err.Error())
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errResponse{Kind: kind, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
