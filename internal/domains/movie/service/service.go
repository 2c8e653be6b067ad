package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cinetix/config"
	"cinetix/infras/otel"
	"cinetix/infras/s3"
	"cinetix/internal/domains/movie/model"
	"cinetix/internal/domains/movie/model/dto"
	"cinetix/internal/domains/movie/repository"
	"cinetix/shared"
	"cinetix/shared/cache"
	"cinetix/shared/constant"
	gDto "cinetix/shared/dto"
	"cinetix/shared/failure"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetMovie    = "movie:get"
	cacheGetAllMovie = "movie:gets"
	cacheCountMovie  = "movie:count"
)

type Movie interface {
	Create(ctx context.Context, req dto.CreateMovieRequest) (dto.MovieResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMoviesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MovieResponse, error)
	Update(ctx context.Context, req dto.UpdateMovieRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadPoster(ctx context.Context, req dto.UploadPosterRequest, id string) (dto.MovieResponse, error)
}

type serviceImpl struct {
	repo  repository.Movie
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Movie, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Movie {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMovieRequest) (res dto.MovieResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	movie := req.ToModel(user)

	if err = s.repo.Insert(ctx, movie); err != nil {
		log.Error().Err(err).Msg("failed to create movie")

		return res, err
	}

	res.FromModel(movie)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMovie)
		shared.InvalidateCaches(c, s.cache, cacheCountMovie)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMoviesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMovie, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for movies")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count movies")

		return res, fmt.Errorf("failed to count movies: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get movies")

		return res, fmt.Errorf("failed to get movies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save movies to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMovie, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for movie count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count movies")

		return res, fmt.Errorf("failed to count movies: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save movie count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MovieResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMovie, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for movie")

		return res, nil
	}

	movie, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get movie")

		return res, fmt.Errorf("failed to get movie: %w", err)
	}

	if movie.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("movie with id %s not found", id)) // nolint:wrapcheck
	}

	res.FromModel(movie)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save movie to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMovieRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentMovie, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check movie existence")

		return err
	}

	if currentMovie.ID == constant.Empty {
		log.Error().Str("movie_id", id).Msg("movie not found")

		return failure.NotFound(fmt.Sprintf("movie with id %s not found", id))
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update movie")

		return fmt.Errorf("failed to update movie: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMovie, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete movie cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMovie)
		shared.InvalidateCaches(c, s.cache, cacheCountMovie)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	movie, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if movie exists")

		return fmt.Errorf("failed to check if movie exists: %w", err)
	}

	if movie.ID == constant.Empty {
		log.Error().Str("movie_id", id).Msg("movie not found")

		return failure.NotFound(fmt.Sprintf("movie with id %s not found", id)) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return failure.Conflict("movie has existing bookings") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete movie")

		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if movie.PosterURL != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, movie.PosterURL)
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMovie, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete movie from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMovie)
		shared.InvalidateCaches(c, s.cache, cacheCountMovie)
	}()

	return nil
}

func (s *serviceImpl) UploadPoster(ctx context.Context, req dto.UploadPosterRequest, id string) (res dto.MovieResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPoster")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	movie, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check movie existence")

		return res, fmt.Errorf("failed to check movie existence: %w", err)
	}

	if movie.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("movie with id %s not found", id)) // nolint:wrapcheck
	}

	fileData, err := io.ReadAll(req.PosterFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to read poster file")

		return res, fmt.Errorf("failed to read poster file: %w", err)
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	// Keep the original extension
	parts := strings.Split(req.Poster.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	contentType := req.Poster.Header.Get(constant.RequestHeaderContentType)

	url, err := s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, filename, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload poster to S3")

		return res, fmt.Errorf("failed to upload poster: %w", err)
	}

	updatePoster := dto.UpdatePosterRequest{PosterURL: url}
	updatedFields := shared.TransformFields(updatePoster, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update movie poster")

		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		return res, fmt.Errorf("failed to update movie poster: %w", err)
	}

	// Delete the replaced poster after the new one is in place
	if movie.PosterURL != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, movie.PosterURL)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	movie.PosterURL = url
	res.FromModel(movie)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMovie, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete movie cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMovie)
	}()

	return res, nil
}
