// Command server exposes the tableau builder as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/parse?syllable=<sigma>[&strict=true]
//	GET  /api/componify?input=<word>
//	POST /api/tableau        body: {"input":"...","output":"...","count":1}
//	GET  /api/constraints
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/cors"
	"github.com/spf13/pflag"

	"github.com/cantophon/ctk"
)

// ---- JSON response types ------------------------------------------------

type syllableJSON struct {
	Syllable string `json:"syllable"`
	Onset    string `json:"onset"`
	Nucleus  string `json:"nucleus"`
	Coda     string `json:"coda"`
	Tone     string `json:"tone"`
	Dotted   string `json:"dotted"`
}

type componifyResponse struct {
	Input  string   `json:"input"`
	Parsed string   `json:"parsed"`
	Tokens []string `json:"tokens"`
}

type constraintJSON struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type constraintsResponse struct {
	Mode        string           `json:"mode"`
	Constraints []constraintJSON `json:"constraints"`
}

type candidateJSON struct {
	Output       string  `json:"output"`
	ParsedOutput string  `json:"parsed_output"`
	Freq         float64 `json:"freq"`
	Violations   []int   `json:"violations"`
}

type tableauRequest struct {
	Input  string  `json:"input"`
	Output string  `json:"output,omitempty"`
	Count  float64 `json:"count,omitempty"`
}

type tableauResponse struct {
	Input       string           `json:"input"`
	ParsedInput string           `json:"parsed_input"`
	Included    *bool            `json:"included,omitempty"`
	Constraints []constraintJSON `json:"constraints"`
	Candidates  []candidateJSON  `json:"candidates"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toSyllableJSON(sigma string, s ctk.Syllable) syllableJSON {
	return syllableJSON{
		Syllable: sigma,
		Onset:    s.Onset,
		Nucleus:  s.Nucleus,
		Coda:     s.Coda,
		Tone:     s.Tone,
		Dotted:   s.String(),
	}
}

func toConstraintsJSON(cs []*ctk.Constraint) []constraintJSON {
	out := make([]constraintJSON, 0, len(cs))
	for _, c := range cs {
		desc, _ := c.Description()
		out = append(out, constraintJSON{Name: c.Name(), Type: c.Type().String(), Description: desc})
	}
	return out
}

func toTableauJSON(t *ctk.Tableau) tableauResponse {
	resp := tableauResponse{
		Input:       t.Input(),
		ParsedInput: t.ParsedInput(),
		Constraints: toConstraintsJSON(t.Constraints()),
		Candidates:  make([]candidateJSON, 0, t.Len()),
	}
	if incl, ok := t.Inclusion(); ok {
		resp.Included = &incl
	}
	for _, c := range t.Candidates() {
		resp.Candidates = append(resp.Candidates, candidateJSON{
			Output:       c.Output,
			ParsedOutput: c.ParsedOutput(),
			Freq:         c.Freq(),
			Violations:   c.Violations(),
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		sigma := r.URL.Query().Get("syllable")
		if sigma == "" {
			writeError(w, http.StatusBadRequest, "missing 'syllable' query parameter")
			return
		}
		strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))

		if !strict {
			writeJSON(w, http.StatusOK, toSyllableJSON(sigma, ctk.Parse(sigma)))
			return
		}
		s, err := ctk.ParseStrict(sigma)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toSyllableJSON(sigma, s))
	}
}

func handleComponify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		input := strings.TrimSpace(r.URL.Query().Get("input"))
		if input == "" {
			writeError(w, http.StatusBadRequest, "missing 'input' query parameter")
			return
		}
		sylls := ctk.ParseWord(input)
		writeJSON(w, http.StatusOK, componifyResponse{
			Input:  input,
			Parsed: ctk.Dotted(sylls),
			Tokens: ctk.Texts(ctk.Componify(sylls)),
		})
	}
}

func handleTableau(p *ctk.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body tableauRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Input) == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'input' field")
			return
		}

		entry := ctk.Entry{Input: ctk.Normalize(body.Input), Output: ctk.Normalize(body.Output), Count: body.Count}
		if entry.Output != "" && entry.Count == 0 {
			entry.Count = 1
		}
		tableaux, err := p.BuildCorpus(r.Context(), []ctk.Entry{entry}, 1)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toTableauJSON(tableaux[0]))
	}
}

func handleConstraints(p *ctk.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, constraintsResponse{
			Mode:        p.Mode().String(),
			Constraints: toConstraintsJSON(p.Constraints()),
		})
	}
}

func newHandler(p *ctk.Pipeline, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse())
	mux.HandleFunc("/api/componify", handleComponify())
	mux.HandleFunc("/api/tableau", handleTableau(p))
	mux.HandleFunc("/api/constraints", handleConstraints(p))

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// ---- main ---------------------------------------------------------------

func main() {
	setPath := pflag.StringP("constraints", "c", "", "path to a constraint-set YAML file (default: built-in set)")
	addr := pflag.String("addr", ":8080", "listen address")
	origins := pflag.StringSlice("origin", []string{"*"}, "allowed CORS origins")
	pflag.Parse()

	set := ctk.DefaultConstraintSet()
	if *setPath != "" {
		log.Printf("loading constraints from %s …", *setPath)
		var err error
		set, err = ctk.LoadConstraintSet(*setPath)
		if err != nil {
			log.Fatalf("failed to load constraints: %v", err)
		}
	}
	p, err := ctk.New(set)
	if err != nil {
		log.Fatalf("failed to compile constraints: %v", err)
	}
	log.Printf("%d constraints loaded, GEN mode %s", len(p.ConstraintNames()), p.Mode())

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, newHandler(p, *origins)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
