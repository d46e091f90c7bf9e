package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/promash/pkg/codec"
	"github.com/ssargent/promash/pkg/storage"
	"go.uber.org/zap"
)

// Server holds the API server state
type Server struct {
	decoder RecipeDecoder
	archive RecipeArchive
	config  ServerConfig
	metrics *Metrics
	logger  *zap.Logger
}

// NewServer creates a new API server. archive may be nil, in which case the
// recipe routes are not mounted.
func NewServer(decoder RecipeDecoder, archive RecipeArchive, config ServerConfig, metrics *Metrics, logger *zap.Logger) *Server {
	if decoder == nil {
		decoder = codec.NewRecipeCodec()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{
		decoder: decoder,
		archive: archive,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// readBody reads the request body, writing an error response on failure
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}
	if len(body) == 0 {
		sendError(w, "Request body is empty", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

// decode decodes body and records the outcome
func (s *Server) decode(body []byte) (*codec.File, error) {
	file, err := s.decoder.Decode(body)
	s.metrics.RecordDecode(len(body), err)
	if err != nil {
		s.logger.Warn("decode failed", zap.Int("size", len(body)), zap.Error(err))
	}
	return file, err
}

// recipeID parses the {id} URL parameter, writing an error response on failure
func recipeID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid recipe id", http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

// refreshArchiveGauge updates the archive size metric
func (s *Server) refreshArchiveGauge() {
	if s.archive == nil {
		return
	}
	n, err := s.archive.Count()
	if err != nil {
		s.logger.Warn("failed to count archive", zap.Error(err))
		return
	}
	s.metrics.SetArchiveRecipes(n)
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleDecode godoc
//
//	@Summary		Decode a recipe file
//	@Description	Decode a ProMash .pro file sent as the request body
//	@Tags			decode
//	@Accept			octet-stream
//	@Produce		json
//	@Success		200	{object}	codec.File
//	@Failure		400	{object}	APIResponse
//	@Failure		422	{object}	DecodeFailure
//	@Router			/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	file, err := s.decode(body)
	if err != nil {
		sendDecodeError(w, err)
		return
	}
	sendSuccess(w, file)
}

// handleAttributes godoc
//
//	@Summary		Flatten a recipe file
//	@Description	Decode a recipe file and return every field as a path and value
//	@Tags			decode
//	@Accept			octet-stream
//	@Produce		json
//	@Success		200	{array}		codec.Attribute
//	@Failure		422	{object}	DecodeFailure
//	@Router			/attributes [post]
//	@Security		ApiKeyAuth
func (s *Server) handleAttributes(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	file, err := s.decode(body)
	if err != nil {
		sendDecodeError(w, err)
		return
	}
	sendSuccess(w, codec.Attributes(file))
}

// handleCreateRecipe godoc
//
//	@Summary		Archive a recipe file
//	@Description	Validate and store a recipe file, returning its id
//	@Tags			recipes
//	@Accept			octet-stream
//	@Produce		json
//	@Success		201	{object}	StoredRecipe
//	@Failure		422	{object}	DecodeFailure
//	@Failure		500	{object}	APIResponse
//	@Router			/recipes [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	id, file, err := s.archive.Put(body)
	var de *codec.DecodeError
	if errors.As(err, &de) {
		s.metrics.RecordDecode(len(body), err)
		s.logger.Warn("rejected recipe", zap.Error(err))
		sendDecodeError(w, err)
		return
	}
	if err != nil {
		s.logger.Error("failed to archive recipe", zap.Error(err))
		sendError(w, fmt.Sprintf("Failed to store recipe: %v", err), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordDecode(len(body), nil)
	s.refreshArchiveGauge()

	s.logger.Info("archived recipe", zap.String("id", id.String()), zap.String("name", file.Header.Name))
	sendSuccessStatus(w, StoredRecipe{ID: id, Recipe: file}, http.StatusCreated)
}

// handleListRecipes godoc
//
//	@Summary		List archived recipes
//	@Tags			recipes
//	@Produce		json
//	@Success		200	{array}		storage.Entry
//	@Failure		500	{object}	APIResponse
//	@Router			/recipes [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	entries, err := s.archive.List()
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to list recipes: %v", err), http.StatusInternalServerError)
		return
	}
	s.metrics.SetArchiveRecipes(len(entries))
	sendSuccess(w, entries)
}

// handleGetRecipe godoc
//
//	@Summary		Get an archived recipe
//	@Tags			recipes
//	@Produce		json
//	@Param			id	path		string	true	"Recipe id"
//	@Success		200	{object}	StoredRecipe
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/recipes/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	file, err := s.archive.Load(id)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "Recipe not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to load recipe: %v", err), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, StoredRecipe{ID: id, Recipe: file})
}

// handleGetRecipeRaw godoc
//
//	@Summary		Download an archived recipe file
//	@Tags			recipes
//	@Produce		octet-stream
//	@Param			id	path		string	true	"Recipe id"
//	@Success		200	{string}	byte
//	@Failure		404	{object}	APIResponse
//	@Router			/recipes/{id}/raw [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetRecipeRaw(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	data, err := s.archive.Get(id)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "Recipe not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to read recipe: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id.String()+".pro"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleDeleteRecipe godoc
//
//	@Summary		Delete an archived recipe
//	@Tags			recipes
//	@Produce		json
//	@Param			id	path		string	true	"Recipe id"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	APIResponse
//	@Router			/recipes/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	err := s.archive.Delete(id)
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "Recipe not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to delete recipe: %v", err), http.StatusInternalServerError)
		return
	}
	s.refreshArchiveGauge()
	sendSuccess(w, map[string]string{"message": "Recipe deleted successfully"})
}
