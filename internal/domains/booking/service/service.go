package service

import (
	"context"
	"fmt"

	"cinetix/config"
	"cinetix/infras/otel"
	"cinetix/internal/domains/booking/model"
	"cinetix/internal/domains/booking/model/dto"
	"cinetix/internal/domains/booking/repository"
	movieModel "cinetix/internal/domains/movie/model"
	movieRepo "cinetix/internal/domains/movie/repository"
	"cinetix/internal/events"
	"cinetix/internal/metrics"
	"cinetix/shared"
	"cinetix/shared/cache"
	"cinetix/shared/constant"
	gDto "cinetix/shared/dto"
	"cinetix/shared/failure"
	"cinetix/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	movieRepo movieRepo.Movie
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	events    events.Publisher
	metrics   *metrics.Metrics
}

func New(repo repository.Booking, movieRepo movieRepo.Movie, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, events events.Publisher, metrics *metrics.Metrics) Booking {
	return &serviceImpl{
		repo:      repo,
		movieRepo: movieRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		events:    events,
		metrics:   metrics,
	}
}

// Create books seats for a movie. The movie is fetched before anything is
// written, so a missing movie never leaves a partial booking behind.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	movie, err := s.movieRepo.Get(ctx, shared.FilterByID(req.MovieID, movieModel.FieldID, movieModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get movie for booking")

		return res, fmt.Errorf("failed to get movie for booking: %w", err)
	}

	if movie.ID == constant.Empty {
		log.Warn().Str("movie_id", req.MovieID).Msg("booking attempt for missing movie")

		return res, failure.NotFound(fmt.Sprintf("movie with id %s not found", req.MovieID)) // nolint:wrapcheck
	}

	booking := req.ToModel(user, movie.Price)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	res.FromModel(booking)

	s.metrics.BookingsCreated.Inc()

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.PublishBookingEvent(c, events.BookingEvent{
			Type:          events.TypeBookingCreated,
			BookingID:     booking.ID,
			MovieID:       booking.MovieID,
			CustomerEmail: booking.CustomerEmail,
			NumberOfSeats: booking.NumberOfSeats,
			TotalPrice:    booking.TotalPrice,
			OccurredAt:    timezone.Now(),
		})

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("booking with id %s not found", id)) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Str("booking_id", id).Msg("booking not found")

		return failure.NotFound(fmt.Sprintf("booking with id %s not found", id)) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.metrics.BookingsDeleted.Inc()

	go func() {
		c := context.WithoutCancel(ctx)

		s.events.PublishBookingEvent(c, events.BookingEvent{
			Type:       events.TypeBookingDeleted,
			BookingID:  booking.ID,
			MovieID:    booking.MovieID,
			OccurredAt: timezone.Now(),
		})

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
