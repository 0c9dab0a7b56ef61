// Package handlers contains HTTP request handlers for the greeting service.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeting-service/internal/repository"
)

// Response messages
const (
	MsgNoContent          = "No content included with POST request"
	MsgNoAdjective        = "No adjective included with POST request"
	MsgUnparseableJSON    = "Unable to parse adjective from JSON"
	MsgUnsupportedContent = "Only text and JSON content types are supported"
	MsgGoodbye            = "Goodbye, cruel world! Restored default values."
	MsgBodyTooLarge       = "Request body too large"
	msgNameUpdatedPrefix  = "Updated the world's name to "
)

var errNestedValue = errors.New("nested values are not supported")

// AdjectivesResponse is returned after an adjective has been added
type AdjectivesResponse struct {
	WorldAdjectives []string `json:"worldAdjectives"`
}

// HelloHandler serves the greeting routes over a shared greeting state
type HelloHandler struct {
	repo repository.GreetingRepository
	pick func(n int) int
}

// NewHelloHandler creates a new hello handler
func NewHelloHandler(repo repository.GreetingRepository) *HelloHandler {
	return &HelloHandler{
		repo: repo,
		pick: rand.IntN,
	}
}

// WithPicker replaces the function used to pick a random adjective index.
// pick must return a value in [0, n).
func (h *HelloHandler) WithPicker(pick func(n int) int) *HelloHandler {
	h.pick = pick
	return h
}

// Routes implements RouteProvider
func (h *HelloHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/hello", Handler: h.HandleGet},
		{Method: http.MethodPost, Path: "/hello", Handler: h.HandlePost},
		{Method: http.MethodPut, Path: "/hello/:name", Handler: h.HandlePut},
		{Method: http.MethodDelete, Path: "/goodbye", Handler: h.HandleDelete},
	}
}

// HandleGet greets the world, decorated with a random adjective when any exist
// GET /hello
func (h *HelloHandler) HandleGet(c *gin.Context) {
	state, err := h.repo.Get(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to read greeting")
		return
	}

	adjective := ""
	if n := len(state.Adjectives); n > 0 {
		adjective = state.Adjectives[h.pick(n)]
	}

	c.String(http.StatusOK, state.Greeting(adjective))
}

// HandlePost adds an adjective sent as plain text or as {"adjective": "..."}
// POST /hello
func (h *HelloHandler) HandlePost(c *gin.Context) {
	body, err := c.GetRawData()
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.String(http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		return
	}
	if err != nil || len(body) == 0 {
		c.String(http.StatusBadRequest, MsgNoContent)
		return
	}

	var adjective string
	switch strings.ToLower(c.ContentType()) {
	case "", gin.MIMEPlain:
		adjective = strings.ToValidUTF8(string(body), "\uFFFD")
	case gin.MIMEJSON:
		adjective, err = parseAdjective(body)
		if err != nil {
			c.String(http.StatusBadRequest, MsgUnparseableJSON)
			return
		}
	default:
		c.String(http.StatusNotAcceptable, MsgUnsupportedContent)
		return
	}

	adjective = strings.TrimSpace(adjective)
	if adjective == "" {
		c.String(http.StatusBadRequest, MsgNoAdjective)
		return
	}

	adjectives, err := h.repo.AddAdjective(c.Request.Context(), adjective)
	if err != nil {
		internalError(c, "Failed to add adjective")
		return
	}

	c.JSON(http.StatusOK, AdjectivesResponse{WorldAdjectives: adjectives})
}

// HandlePut renames the world. Over a real connection net/http rejects
// malformed escapes before routing, so the decoder error reaches only
// in-process callers.
// PUT /hello/:name
func (h *HelloHandler) HandlePut(c *gin.Context) {
	name, err := decodeName(rawPathParam(c, "name"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.SetName(c.Request.Context(), name); err != nil {
		internalError(c, "Failed to update name")
		return
	}

	c.String(http.StatusOK, msgNameUpdatedPrefix+name)
}

// HandleDelete restores the default name and clears the adjectives
// DELETE /goodbye
func (h *HelloHandler) HandleDelete(c *gin.Context) {
	if err := h.repo.Reset(c.Request.Context()); err != nil {
		internalError(c, "Failed to reset greeting")
		return
	}

	c.String(http.StatusOK, MsgGoodbye)
}

// parseAdjective reads the adjective field of a flat JSON object. Scalar
// values other than strings are taken in their JSON text form.
func parseAdjective(body []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return "", err
	}
	if dec.More() {
		return "", errors.New("unexpected data after JSON object")
	}

	adjective := ""
	for key, value := range fields {
		var text string
		switch v := value.(type) {
		case nil:
		case string:
			text = v
		case json.Number:
			text = v.String()
		case bool:
			text = strconv.FormatBool(v)
		default:
			return "", errNestedValue
		}
		if key == "adjective" {
			adjective = text
		}
	}
	return adjective, nil
}

// rawPathParam returns the still-escaped path segment bound to key. Outside
// a routed request the bound value is taken as already escaped.
func rawPathParam(c *gin.Context, key string) string {
	pattern := strings.Split(c.FullPath(), "/")
	segments := strings.Split(c.Request.URL.EscapedPath(), "/")
	for i, part := range pattern {
		if part == ":"+key && i < len(segments) {
			return segments[i]
		}
	}
	return c.Param(key)
}

// decodeName percent-decodes a path segment with form semantics ('+' is a
// space). Invalid UTF-8 sequences are replaced with U+FFFD.
func decodeName(raw string) (string, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(decoded, "\uFFFD"), nil
}

func internalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal_error",
		"message": message,
	})
}
