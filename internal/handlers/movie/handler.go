package movie

import (
	"net/http"

	"cinetix/infras/otel"
	"cinetix/internal/domains/movie/model"
	"cinetix/internal/domains/movie/model/dto"
	"cinetix/internal/domains/movie/service"
	"cinetix/shared/constant"
	gDto "cinetix/shared/dto"
	"cinetix/shared/failure"
	"cinetix/shared/validator"
	"cinetix/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Movie
	otel    otel.Otel
}

func New(service service.Movie, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/movies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMovie)
		routerGroup.Get("/", handler.GetMovies)
		routerGroup.Get("/{id}", handler.GetMovieByID)
		routerGroup.Patch("/{id}", handler.UpdateMovie)
		routerGroup.Delete("/{id}", handler.DeleteMovie)
		routerGroup.Post("/{id}/poster", handler.UploadPoster)
	})
}

// CreateMovie handles the creation of a new movie.
// @Summary Create a new movie
// @Description Create a new movie with the provided details.
// @Tags Movie
// @Accept json
// @Produce json
// @Param request body dto.CreateMovieRequest true "Create Movie Request"
// @Success 201 {object} response.Data[dto.MovieResponse] "Movie created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies [post]
// @Security BearerAuth
func (handler *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMovie")
	defer scope.End()

	req := dto.CreateMovieRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create movie")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Movie created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMovies retrieves all movies based on query parameters.
// @Summary Get all movies
// @Description Retrieve all movies with optional filtering and pagination.
// @Tags Movie
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param genre query string false "Filter by genre"
// @Success 200 {object} response.Data[dto.GetMoviesResponse] "List of movies"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies [get]
func (handler *Handler) GetMovies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMovies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	title := r.URL.Query().Get(model.FieldTitle)
	genre := r.URL.Query().Get(model.FieldGenre)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    title,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldGenre,
				Operator: gDto.FilterOperatorLike,
				Value:    genre,
				Table:    model.TableName,
			},
		},
	}

	movies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get movies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Movies retrieved successfully")

	response.WithJSON(w, http.StatusOK, movies)
}

// GetMovieByID retrieves a movie by its ID.
// @Summary Get a movie by ID
// @Description Retrieve a movie by its unique identifier.
// @Tags Movie
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} response.Data[dto.MovieResponse] "Movie details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies/{id} [get]
func (handler *Handler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMovieByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	movie, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get movie by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Movie retrieved successfully")

	response.WithJSON(w, http.StatusOK, movie)
}

// UpdateMovie updates an existing movie by its ID.
// @Summary Update a movie by ID
// @Description Update the details of an existing movie.
// @Tags Movie
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param request body dto.UpdateMovieRequest true "Update Movie Request"
// @Success 200 {object} response.Message "Movie updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMovie")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMovieRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update movie")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Movie updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Movie updated successfully")
}

// DeleteMovie deletes a movie by its ID.
// @Summary Delete a movie by ID
// @Description Delete a movie using its unique identifier. Movies with existing bookings cannot be deleted.
// @Tags Movie
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} response.Message "Movie deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMovie")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete movie")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Movie deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Movie deleted successfully")
}

// UploadPoster uploads a poster image for a movie.
// @Summary Upload a movie poster
// @Description Upload a poster image for the movie, replacing any existing one.
// @Tags Movie
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Movie ID"
// @Param poster formData file true "Poster image"
// @Success 200 {object} response.Data[dto.MovieResponse] "Poster uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies/{id}/poster [post]
// @Security BearerAuth
func (handler *Handler) UploadPoster(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPoster")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	req := dto.UploadPosterRequest{}

	file, fileHeader, err := r.FormFile("poster")
	if err == nil {
		req.Poster = fileHeader
		req.PosterFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadPoster(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload poster")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Poster uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
