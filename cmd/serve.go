package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordnova/chord"
	"github.com/jsphweid/chordnova/config"
	"github.com/jsphweid/chordnova/constants"
	"github.com/jsphweid/chordnova/distance"
	"github.com/jsphweid/chordnova/metrics"
	"github.com/jsphweid/chordnova/model"
	"github.com/jsphweid/chordnova/notation"
	"github.com/jsphweid/chordnova/pitch"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveConfigPath string

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "YAML config file (default: $CHORDNOVA_CONFIG)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the pairing API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := serveConfigPath
		if path == "" {
			path = constants.GetConfigPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := applyLogging(cfg); err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

type server struct {
	cfg config.Config
	log *zap.Logger
}

// NewRouter builds the HTTP API: POST /diff, /pair and /vec, GET /healthz and
// /metrics, wrapped in CORS.
func NewRouter(cfg config.Config, l *zap.Logger) http.Handler {
	s := &server{cfg: cfg, log: l}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(metrics.Middleware)
	router.HandleFunc("/diff", s.handleDiff).Methods("POST")
	router.HandleFunc("/pair", s.handlePair).Methods("POST")
	router.HandleFunc("/vec", s.handleVec).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      NewRouter(cfg, log),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleDiff(w http.ResponseWriter, r *http.Request) {
	from, to, _, ok := s.readPairRequest(w, r)
	if !ok {
		return
	}
	start := time.Now()
	d, err := distance.Compare(from, to)
	metrics.ObserveSearch("diff", start)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.NewDiffResponse(d))
}

func (s *server) handlePair(w http.ResponseWriter, r *http.Request) {
	s.runSearch(w, r, func(string) (distance.Strategy, error) {
		return distance.StrategyPairs, nil
	})
}

func (s *server) handleVec(w http.ResponseWriter, r *http.Request) {
	s.runSearch(w, r, func(name string) (distance.Strategy, error) {
		if name == "" {
			return distance.StrategyInversion, nil
		}
		return distance.ParseStrategy(name)
	})
}

func (s *server) runSearch(w http.ResponseWriter, r *http.Request, pick func(string) (distance.Strategy, error)) {
	from, to, body, ok := s.readPairRequest(w, r)
	if !ok {
		return
	}
	strategy, err := pick(body.Strategy)
	if err != nil {
		s.writeError(w, err)
		return
	}

	start := time.Now()
	pair, d, err := distance.SearchDiff(from, to, strategy)
	metrics.ObserveSearch(strategy.String(), start)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Debug("search finished",
		zap.Stringer("strategy", strategy),
		zap.String("from", from.Key()),
		zap.String("to", to.Key()),
	)
	writeJSON(w, http.StatusOK, model.NewPairResponse(pair, d, strategy))
}

func (s *server) readPairRequest(w http.ResponseWriter, r *http.Request) (chord.Chord, chord.Chord, model.PairRequestBody, bool) {
	var body model.PairRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "could not decode request body: " + err.Error()})
		return chord.Chord{}, chord.Chord{}, body, false
	}

	dedup := body.Dedup || s.cfg.Search.Dedup
	from, err := chord.Parse(body.From, dedup)
	if err != nil {
		s.writeError(w, err)
		return chord.Chord{}, chord.Chord{}, body, false
	}
	to, err := chord.Parse(body.To, dedup)
	if err != nil {
		s.writeError(w, err)
		return chord.Chord{}, chord.Chord{}, body, false
	}
	return from, to, body, true
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, notation.ErrSyntax),
		errors.Is(err, pitch.ErrOutOfRange),
		errors.Is(err, chord.ErrEmptyChord),
		errors.Is(err, distance.ErrUnknownStrategy):
		status = http.StatusBadRequest
	default:
		s.log.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
