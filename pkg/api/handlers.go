package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/puzzlesearch/pkg/buildinfo"
	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/httputil"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle/superqueens"
	"github.com/matzehuels/puzzlesearch/pkg/solver"
	"github.com/matzehuels/puzzlesearch/pkg/store"
)

// maxListLimit bounds GET /v1/runs.
const maxListLimit = 500

type fifteenRequest struct {
	Board            string `json:"board"`
	MaxExpansions    int    `json:"max_expansions,omitempty"`
	RejectUnsolvable bool   `json:"reject_unsolvable,omitempty"`
	Refresh          bool   `json:"refresh,omitempty"`
}

type superqueensRequest struct {
	N             int                  `json:"n"`
	Placed        []superqueens.Square `json:"placed,omitempty"`
	MaxExpansions int                  `json:"max_expansions,omitempty"`
	Refresh       bool                 `json:"refresh,omitempty"`
}

// solveErrorBody is an error response that still carries the partial result.
type solveErrorBody struct {
	httputil.ErrorBody
	Result *solver.Result `json:"result,omitempty"`
}

func (s *Server) handleFifteen(w http.ResponseWriter, r *http.Request) {
	var req fifteenRequest
	if err := httputil.DecodeJSON(w, r, s.server.MaxBodyBytes, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	s.solve(w, r, solver.Options{
		Puzzle:           puzzle.Fifteen,
		Board:            req.Board,
		MaxExpansions:    req.MaxExpansions,
		RejectUnsolvable: req.RejectUnsolvable || s.search.RejectUnsolvable,
		Refresh:          req.Refresh,
	})
}

func (s *Server) handleSuperqueens(w http.ResponseWriter, r *http.Request) {
	var req superqueensRequest
	if err := httputil.DecodeJSON(w, r, s.server.MaxBodyBytes, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	s.solve(w, r, solver.Options{
		Puzzle:        puzzle.Superqueens,
		N:             req.N,
		Placed:        req.Placed,
		MaxExpansions: req.MaxExpansions,
		Refresh:       req.Refresh,
	})
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request, opts solver.Options) {
	if opts.MaxExpansions < 0 {
		httputil.WriteError(w, errors.New(errors.ErrCodeInvalidInput, "max_expansions must not be negative"))
		return
	}
	opts.MaxExpansions = s.clampExpansions(opts.MaxExpansions)
	opts.Timeout = s.search.Timeout
	opts.CheckEvery = s.search.CheckEvery
	opts.Logger = s.logger

	res, err := s.runner.Solve(r.Context(), opts)
	if err != nil {
		if res == nil {
			httputil.WriteError(w, err)
			return
		}
		_ = httputil.WriteJSON(w, errors.HTTPStatus(err), solveErrorBody{
			ErrorBody: httputil.NewErrorBody(err),
			Result:    res,
		})
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, res)
}

// clampExpansions applies the server cap. Zero asks for the cap itself.
func (s *Server) clampExpansions(requested int) int {
	limit := s.search.MaxExpansions
	if limit <= 0 {
		return requested
	}
	if requested == 0 || requested > limit {
		return limit
	}
	return requested
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.runner.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := store.ListOptions{Puzzle: q.Get("puzzle")}

	if opts.Puzzle != "" && !puzzle.Valid(opts.Puzzle) {
		httputil.WriteError(w, errors.New(errors.ErrCodeInvalidPuzzle, "unknown puzzle %q", opts.Puzzle))
		return
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			httputil.WriteError(w, errors.New(errors.ErrCodeInvalidInput, "limit must be between 1 and %d", maxListLimit))
			return
		}
		opts.Limit = n
	}

	runs, err := s.runner.Store.List(r.Context(), opts)
	if err != nil {
		s.logger.Error("list runs", "err", err)
		httputil.WriteError(w, err)
		return
	}
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}
