package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/scalechords/chord"
	"github.com/jsphweid/scalechords/formula"
	"github.com/jsphweid/scalechords/model"
	"github.com/jsphweid/scalechords/note"
	"github.com/jsphweid/scalechords/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddress  string
	serveFormulas string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "", "listen address (default from config)")
	serveCmd.Flags().StringVarP(&serveFormulas, "formulas", "f", "", "YAML or TOML chord formula file, reloaded on change")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord matching over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddress == "" {
			serveAddress = cfg.Server.Address
		}
		if serveFormulas == "" {
			serveFormulas = cfg.Server.Formulas
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, serveAddress, serveFormulas)
	},
}

type Server struct {
	log *zap.Logger

	mu       sync.RWMutex
	formulas *chord.Formulas
}

func NewServer(log *zap.Logger, formulas *chord.Formulas) *Server {
	if formulas == nil {
		formulas = chord.DefaultFormulas()
	}
	return &Server{log: log, formulas: formulas}
}

func (s *Server) Formulas() *chord.Formulas {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formulas
}

func (s *Server) SetFormulas(f *chord.Formulas) {
	s.mu.Lock()
	s.formulas = f
	s.mu.Unlock()
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.requestID)
	router.HandleFunc("/match", s.HandleMatch).Methods(http.MethodPost)
	router.HandleFunc("/harmonize", s.HandleHarmonize).Methods(http.MethodPost)
	router.HandleFunc("/formulas", s.HandleFormulas).Methods(http.MethodGet)
	router.HandleFunc("/scales", s.HandleScales).Methods(http.MethodGet)
	router.HandleFunc("/notes", s.HandleNotes).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

func (s *Server) HandleMatch(w http.ResponseWriter, r *http.Request) {
	var input model.MatchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, errors.New("could not decode request body: "+err.Error()))
		return
	}

	key, intervals, err := parseInput(input.Key, input.Scale, input.Labels)
	if err != nil {
		writeError(w, err)
		return
	}
	root, chords, err := chord.MatchChordsWithRoot(key, intervals, input.Mode, input.Degree, s.Formulas())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MatchResponse{Root: root, Chords: chords})
}

func (s *Server) HandleHarmonize(w http.ResponseWriter, r *http.Request) {
	var input model.HarmonizeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, errors.New("could not decode request body: "+err.Error()))
		return
	}

	key, intervals, err := parseInput(input.Key, input.Scale, input.Labels)
	if err != nil {
		writeError(w, err)
		return
	}
	degrees, err := chord.Harmonize(key, intervals, input.Mode, s.Formulas())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, degrees)
}

func (s *Server) HandleFormulas(w http.ResponseWriter, r *http.Request) {
	all := s.Formulas().All()
	res := make([]model.FormulaResponse, 0, len(all))
	for _, f := range all {
		res = append(res, model.FormulaResponse{Name: f.Name, Intervals: toStrings(f.Intervals)})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) HandleScales(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ScaleResponse, 0)
	for _, name := range scale.Names() {
		intervals, err := scale.Lookup(name)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
			return
		}
		res = append(res, model.ScaleResponse{Name: name, Intervals: toStrings(intervals)})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) HandleNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.NotesResponse{
		Notes:     note.Notes(),
		Intervals: toStrings(note.Intervals()),
	})
}

func serve(ctx context.Context, address, formulasPath string) error {
	formulas, err := loadFormulas(formulasPath)
	if err != nil {
		return err
	}
	s := NewServer(log, formulas)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if formulasPath != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := formula.Watch(ctx, log, formulasPath, s.SetFormulas)
			if err != nil {
				log.Warn("formula watcher stopped", zap.Error(err))
			}
		}()
	}

	server := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("listening", zap.String("address", address), zap.Int("formulas", formulas.Len()))
	err = server.ListenAndServe()
	cancel()
	wg.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
