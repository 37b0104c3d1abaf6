package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/rustyeddy/tradebook/session"
	"github.com/rustyeddy/tradebook/sheet"
)

// maxUploadBytes caps chart screenshot uploads.
const maxUploadBytes = 10 << 20

// HealthCheck handles GET /health
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListFiles handles GET /api/files, listing every ledger file in the
// data directory.
func (s *Server) ListFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.cfg.Storage.DataDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := sheet.ForPath(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	active, _ := s.sess.Name()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"files":  names,
		"active": active,
	})
}

// CreateFile handles POST /api/files. A name is required; a create
// never reuses the previous active file. The new file gets the
// balance-config-only shape.
func (s *Server) CreateFile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                  string   `json:"name"`
		StartingBalanceCrypto *float64 `json:"startingBalanceCrypto"`
		StartingBalanceForex  *float64 `json:"startingBalanceForex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, &journal.ValidationError{Param: "name"})
		return
	}

	name, err := s.fileName(req.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cryptoStart := s.cfg.Ledger.StartingBalanceCrypto
	forexStart := s.cfg.Ledger.StartingBalanceForex
	if req.StartingBalanceCrypto != nil {
		cryptoStart = *req.StartingBalanceCrypto
	}
	if req.StartingBalanceForex != nil {
		forexStart = *req.StartingBalanceForex
	}

	path := filepath.Join(s.cfg.Storage.DataDir, name)
	engine, err := sheet.ForPath(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := s.codec.EncodeNew(nil, cryptoStart, forexStart)
	if err := engine.Write(path, journal.Columns(), rows, s.cfg.Storage.Sheet); err != nil {
		respondError(w, err)
		return
	}

	// Only a successful write may replace the active file.
	s.sess.SetActive(path, name, rows)
	log.Printf("created ledger %s", name)

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"name": name,
		"ledger": journal.Ledger{
			Trades:                []journal.TradeRecord{},
			StartingBalanceCrypto: cryptoStart,
			StartingBalanceForex:  forexStart,
		},
	})
}

// LoadFile handles POST /api/files/{name}/load: read, decode, make
// active, return the ledger.
func (s *Server) LoadFile(w http.ResponseWriter, r *http.Request) {
	name, err := s.fileName(mux.Vars(r)["name"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.cfg.Storage.DataDir, name)
	engine, err := sheet.ForPath(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, rows, err := engine.Read(path)
	if err != nil {
		// A failed load leaves the previous active file untouched.
		respondError(w, err)
		return
	}

	ledger := s.codec.Decode(rows)
	s.sess.SetActive(path, name, rows)
	log.Printf("loaded ledger %s (%d trades)", name, len(ledger.Trades))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":   name,
		"ledger": ledger,
	})
}

// DeleteFile handles DELETE /api/files/{name}. The session clears only
// when the deleted file was the active one.
func (s *Server) DeleteFile(w http.ResponseWriter, r *http.Request) {
	name, err := s.fileName(mux.Vars(r)["name"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := os.Remove(filepath.Join(s.cfg.Storage.DataDir, name)); err != nil {
		respondError(w, err)
		return
	}

	cleared := s.sess.ClearIfMatches(name)
	log.Printf("deleted ledger %s (active cleared: %v)", name, cleared)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"deleted":       name,
		"activeCleared": cleared,
	})
}

// SaveLedger handles PUT /api/ledger, overwriting the active file with
// the posted ledger. With no active file the save is rejected; it never
// falls back to creating one.
func (s *Server) SaveLedger(w http.ResponseWriter, r *http.Request) {
	// Pointer balances distinguish "not sent" from a deliberate zero;
	// only absent ones fall back to the default.
	var req struct {
		Trades                []journal.TradeRecord `json:"trades"`
		StartingBalanceCrypto *float64              `json:"startingBalanceCrypto"`
		StartingBalanceForex  *float64              `json:"startingBalanceForex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	path, err := s.sess.Target()
	if err != nil {
		respondError(w, err)
		return
	}
	engine, err := sheet.ForPath(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cryptoStart := journal.DefaultStartingBalance
	forexStart := journal.DefaultStartingBalance
	if req.StartingBalanceCrypto != nil {
		cryptoStart = *req.StartingBalanceCrypto
	}
	if req.StartingBalanceForex != nil {
		forexStart = *req.StartingBalanceForex
	}
	assignIDs(req.Trades)

	rows := s.codec.Encode(req.Trades, cryptoStart, forexStart)
	if err := engine.Write(path, journal.Columns(), rows, s.cfg.Storage.Sheet); err != nil {
		respondError(w, err)
		return
	}

	s.sess.SetRows(rows)
	log.Printf("saved %d trades to %s", len(req.Trades), filepath.Base(path))

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"saved":  len(req.Trades),
		"target": filepath.Base(path),
	})
}

// UploadChart handles POST /api/charts, storing one multipart image
// and returning its opaque ref for the trade's Chart Image cell.
func (s *Server) UploadChart(w http.ResponseWriter, r *http.Request) {
	// caps the bytes read, not just the in-memory buffering
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, &journal.ValidationError{Param: "image"})
		return
	}
	defer file.Close()

	ref, err := s.charts.Save(header.Filename, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"path": ref})
}

// fileName normalizes a user-supplied ledger name: bare of any
// directory parts, defaulting to .xlsx when no extension is given.
func (s *Server) fileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", errors.New("invalid file name")
	}
	if filepath.Ext(name) == "" {
		name += ".xlsx"
	}
	return name, nil
}

func assignIDs(trades []journal.TradeRecord) {
	for i := range trades {
		if trades[i].TradeID == "" {
			trades[i].TradeID = idNew()
		}
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps the error taxonomy onto status codes: missing
// parameters are 400, saving with no active file is 409, an unreadable
// file is 422, a missing file is 404.
func respondError(w http.ResponseWriter, err error) {
	var vErr *journal.ValidationError
	var fErr *sheet.FormatError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, session.ErrNoActiveFile):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &fErr):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, os.ErrNotExist):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// indirection so tests can pin generated trade ids
var idNew = id.New
