package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deanrtaylor1/docrank/logger"
	"github.com/deanrtaylor1/docrank/pipeline"
	"github.com/deanrtaylor1/docrank/rank"
	"github.com/deanrtaylor1/docrank/tfidf"
)

const maxBodyBytes = 1 << 20

type RankRequest struct {
	Documents      []string `json:"documents"`
	Reference      int      `json:"reference"`
	// CandidatesOnly drops the reference and zero-score documents from the ranking
	CandidatesOnly bool     `json:"candidates_only"`
}

type Response struct {
	Message     string            `json:"message"`
	MostSimilar int               `json:"most_similar,omitempty"`
	Data        []rank.ResultsMap `json:"data,omitempty"`
}

type AnalyzeResponse struct {
	Message     string             `json:"message"`
	Vocabulary  map[string]int     `json:"vocabulary"`
	TF          []tfidf.TermScores `json:"tf"`
	IDF         tfidf.IDFTable     `json:"idf"`
	TFIDF       []tfidf.TermScores `json:"tfidf"`
	Data        []rank.ResultsMap  `json:"data"`
	MostSimilar int                `json:"most_similar"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		logger.HandleError(fmt.Errorf("unable to marshal json: %w", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonBytes); err != nil {
		logger.HandleError(err)
	}
}

// decodeAndAnalyze reads a RankRequest and runs the pipeline, writing the error
// response itself when either step fails
func decodeAndAnalyze(w http.ResponseWriter, r *http.Request) (*pipeline.Report, RankRequest, bool) {
	var req RankRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: fmt.Sprintf("invalid request body: %v", err)})
		return nil, req, false
	}

	report, err := pipeline.Analyze(req.Documents, req.Reference)
	if err != nil {
		writeJSON(w, statusFor(err), Response{Message: err.Error()})
		return nil, req, false
	}
	logger.HandleDebug("ranked documents", "documents", len(req.Documents), "most_similar", report.MostSimilar)
	return report, req, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, tfidf.ErrEmptyDocument),
		errors.Is(err, tfidf.ErrTermAbsentEverywhere),
		errors.Is(err, tfidf.ErrInsufficientDocuments):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// Server route ranking the posted documents against the reference
func handleApiRank(w http.ResponseWriter, r *http.Request) {
	report, req, ok := decodeAndAnalyze(w, r)
	if !ok {
		return
	}
	results := report.Results
	if req.CandidatesOnly {
		results = rank.FilterResults(rank.FilterResults(results, rank.IsCandidate), rank.IsGreaterThanZero)
	}
	writeJSON(w, http.StatusOK, Response{
		Message:     fmt.Sprintf("document %d is most similar to document %d", report.MostSimilar, report.Reference+1),
		MostSimilar: report.MostSimilar,
		Data:        results,
	})
}

// Server route returning every pipeline table for the posted documents
func handleApiAnalyze(w http.ResponseWriter, r *http.Request) {
	report, _, ok := decodeAndAnalyze(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Message:     "ok",
		Vocabulary:  report.Vocabulary.Counts(),
		TF:          report.TF,
		IDF:         report.IDF,
		TFIDF:       report.TFIDF,
		Data:        report.Results,
		MostSimilar: report.MostSimilar,
	})
}

// Route handler
func handleRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.HandleDebug("request", "method", r.Method, "path", r.URL.Path)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/health":
			writeJSON(w, http.StatusOK, Response{Message: "ok"})
		case r.Method == http.MethodPost && r.URL.Path == "/api/rank":
			handleApiRank(w, r)
		case r.Method == http.MethodPost && r.URL.Path == "/api/analyze":
			handleApiAnalyze(w, r)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "404 Not Found")
		}
	}
}

func Handler() http.Handler {
	return handleRequests()
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
func Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.HandleLog("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
