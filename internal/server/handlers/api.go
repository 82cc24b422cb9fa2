package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/namelens/domainideas/internal/core"
	apperrors "github.com/namelens/domainideas/internal/errors"
)

// ServerIPMessage tells operators what to do with the reported address.
const ServerIPMessage = "Add this IP to the registrar API allow-list"

// DomainSuggester runs one suggestion request.
type DomainSuggester interface {
	Suggest(ctx context.Context, req core.SuggestRequest) (*core.SuggestResult, error)
}

// PublicIPResolver discovers this server's egress address.
type PublicIPResolver interface {
	Lookup(ctx context.Context) (string, error)
}

// API serves the /api endpoints.
type API struct {
	Suggester  DomainSuggester
	IPResolver PublicIPResolver

	// HasCredentials reports whether the registrar account is configured.
	HasCredentials func() bool
	Port           int
}

// ServerIPResponse is the body of GET /api/server-ip.
type ServerIPResponse struct {
	IP      string `json:"ip"`
	Message string `json:"message"`
}

// StatusResponse is the body of GET /api/health.
type StatusResponse struct {
	Status         string `json:"status"`
	HasCredentials bool   `json:"hasCredentials"`
	Port           int    `json:"port"`
}

// DomainsHandler handles GET /api/domains?keyword=&tld=[&max=].
func (a *API) DomainsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	keyword := strings.TrimSpace(query.Get("keyword"))
	tld := strings.TrimSpace(query.Get("tld"))
	if keyword == "" || tld == "" {
		apperrors.RespondWithError(w, r, invalidInput("Missing required parameters: keyword and tld",
			"pass both keyword and tld query parameters, e.g. ?keyword=home+warranty&tld=com"))
		return
	}

	maxCount := 0
	if raw := strings.TrimSpace(query.Get("max")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			apperrors.RespondWithError(w, r, invalidInput("max must be a non-negative integer",
				"omit max to use the default candidate count"))
			return
		}
		maxCount = parsed
	}

	if a == nil || a.Suggester == nil {
		apperrors.RespondWithError(w, r, core.ConfigurationError("suggest", "domain suggestions are not configured", nil))
		return
	}

	result, err := a.Suggester.Suggest(r.Context(), core.SuggestRequest{
		Keyword:  keyword,
		TLD:      tld,
		MaxCount: maxCount,
	})
	if err != nil {
		apperrors.RespondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ServerIPHandler handles GET /api/server-ip.
func (a *API) ServerIPHandler(w http.ResponseWriter, r *http.Request) {
	if a == nil || a.IPResolver == nil {
		apperrors.RespondWithError(w, r, apperrors.NewConfigInvalidError("ip lookup is not configured"))
		return
	}

	ip, err := a.IPResolver.Lookup(r.Context())
	if err != nil {
		apperrors.RespondWithError(w, r, apperrors.WrapExternalService(r.Context(), err, "could not determine the server ip"))
		return
	}

	writeJSON(w, http.StatusOK, ServerIPResponse{IP: ip, Message: ServerIPMessage})
}

// StatusHandler handles GET /api/health. It never calls the registrar.
func (a *API) StatusHandler(w http.ResponseWriter, r *http.Request) {
	response := StatusResponse{Status: "ok"}
	if a != nil {
		response.Port = a.Port
		if a.HasCredentials != nil {
			response.HasCredentials = a.HasCredentials()
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func invalidInput(message, hint string) error {
	err := core.InvalidInput("parse request", message)
	err.Hint = hint
	return err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
