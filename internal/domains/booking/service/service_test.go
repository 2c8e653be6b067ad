package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cinetix/config"
	"cinetix/infras/otel/mocks"
	bookingMocks "cinetix/internal/domains/booking/mocks"
	"cinetix/internal/domains/booking/model"
	"cinetix/internal/domains/booking/model/dto"
	"cinetix/internal/domains/booking/service"
	movieMocks "cinetix/internal/domains/movie/mocks"
	movieModel "cinetix/internal/domains/movie/model"
	eventMocks "cinetix/internal/events/mocks"
	"cinetix/internal/metrics"
	cacheMocks "cinetix/shared/cache/mocks"
	"cinetix/shared/constant"
	gDto "cinetix/shared/dto"
	"cinetix/shared/failure"
	gModel "cinetix/shared/model"
	"cinetix/shared/timezone"
)

func validMovie() movieModel.Movie {
	return movieModel.Movie{
		ID:              "movie-id-123",
		Title:           "Interstellar",
		Genre:           "Sci-Fi",
		DurationMinutes: 169,
		Price:           12.5,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin-id",
			ModifiedBy: "admin-id",
		},
	}
}

func validBooking() model.Booking {
	return model.Booking{
		ID:            "booking-id-123",
		MovieID:       "movie-id-123",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		NumberOfSeats: 2,
		TotalPrice:    25.0,
		BookingTime:   timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "user-id-123",
			ModifiedBy: "user-id-123",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMovieRepo := movieMocks.NewMockMovie(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovieRepo, cfg, mockCache, mockOtel, mockEvents, metrics.New())

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation computes total price from movie price",
			req: dto.CreateBookingRequest{
				MovieID:       "movie-id-123",
				CustomerName:  "Jane Doe",
				CustomerEmail: "jane@example.com",
				NumberOfSeats: 3,
			},
			setupMock: func() {
				mockMovieRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validMovie(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, 37.5, booking.TotalPrice)
						assert.Equal(t, "user-id-123", booking.CreatedBy)

						return nil
					})

				mockEvents.EXPECT().
					PublishBookingEvent(gomock.Any(), gomock.Any()).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "movie does not exist",
			req: dto.CreateBookingRequest{
				MovieID:       "missing-movie-id",
				CustomerName:  "Jane Doe",
				CustomerEmail: "jane@example.com",
				NumberOfSeats: 2,
			},
			setupMock: func() {
				// no Insert expectation: nothing may be written for a missing movie
				mockMovieRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(movieModel.Movie{}, nil)
			},
			wantErr: true,
		},
		{
			name: "movie lookup error",
			req: dto.CreateBookingRequest{
				MovieID:       "movie-id-123",
				CustomerName:  "Jane Doe",
				CustomerEmail: "jane@example.com",
				NumberOfSeats: 2,
			},
			setupMock: func() {
				mockMovieRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(movieModel.Movie{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "repository error on insert",
			req: dto.CreateBookingRequest{
				MovieID:       "movie-id-123",
				CustomerName:  "Jane Doe",
				CustomerEmail: "jane@example.com",
				NumberOfSeats: 2,
			},
			setupMock: func() {
				mockMovieRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validMovie(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, 37.5, res.TotalPrice)
			}
		})
	}
}

func TestBookingService_CreateMissingMovieReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMovieRepo := movieMocks.NewMockMovie(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovieRepo, cfg, mockCache, mockOtel, mockEvents, metrics.New())

	mockMovieRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(movieModel.Movie{}, nil)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		MovieID:       "missing-movie-id",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		NumberOfSeats: 2,
	})

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
	assert.Contains(t, err.Error(), "movie with id missing-movie-id not found")
}

// A booking's total price is computed once at creation. Later movie price
// changes must not alter what an existing booking reads back.
func TestBookingService_TotalPriceUnaffectedByMoviePriceChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMovieRepo := movieMocks.NewMockMovie(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovieRepo, cfg, mockCache, mockOtel, mockEvents, metrics.New())

	movie := validMovie() // price 12.5

	var stored model.Booking

	mockMovieRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(movie, nil)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			stored = booking

			return nil
		})

	mockEvents.EXPECT().
		PublishBookingEvent(gomock.Any(), gomock.Any()).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	created, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		MovieID:       movie.ID,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		NumberOfSeats: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 25.0, created.TotalPrice)

	// The movie price doubles after the booking was made. Reading the booking
	// back must return the stored total; no movie lookup is expected here, so
	// any recomputation against the new price would fail the mock controller.
	movie.Price = 25.0

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(stored, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	fetched, err := svc.Get(context.Background(), stored.ID)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 25.0, fetched.TotalPrice)
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMovieRepo := movieMocks.NewMockMovie(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovieRepo, cfg, mockCache, mockOtel, mockEvents, metrics.New())

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful get on cache miss",
			id:   "booking-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "booking-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id-123", res.ID)
				assert.Equal(t, 25.0, res.TotalPrice)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMovieRepo := movieMocks.NewMockMovie(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovieRepo, cfg, mockCache, mockOtel, mockEvents, metrics.New())

	t.Run("successful get all on cache miss", func(t *testing.T) {
		// one miss for the listing key, one for the count key
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{validBooking()}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		time.Sleep(10 * time.Millisecond)

		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockMovieRepo := movieMocks.NewMockMovie(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockMovieRepo, cfg, mockCache, mockOtel, mockEvents, metrics.New())

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "booking-id-123",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(), nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockEvents.EXPECT().
					PublishBookingEvent(gomock.Any(), gomock.Any()).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error on delete",
			id:   "booking-id-123",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validBooking(), nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
