package dto

import (
	"strings"

	"cinetix/internal/domains/booking/model"
	"cinetix/shared"
	"cinetix/shared/constant"
	gDto "cinetix/shared/dto"
	gModel "cinetix/shared/model"
	"cinetix/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	MovieID       string `json:"movie_id"        validate:"required,notblank"`
	CustomerName  string `json:"customer_name"   validate:"required,notblank,max=100"`
	CustomerEmail string `json:"customer_email"  validate:"required,email,max=255"`
	NumberOfSeats int    `json:"number_of_seats" validate:"required,min=1,max=100"`
}

// ToModel builds the booking with its total price fixed at creation time. Later
// changes to the movie price never touch existing bookings.
func (c *CreateBookingRequest) ToModel(user string, moviePrice float64) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		MovieID:       c.MovieID,
		CustomerName:  strings.TrimSpace(c.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(c.CustomerEmail)),
		NumberOfSeats: c.NumberOfSeats,
		TotalPrice:    moviePrice * float64(c.NumberOfSeats),
		BookingTime:   timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID            string  `json:"id"`
	MovieID       string  `json:"movie_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	NumberOfSeats int     `json:"number_of_seats"`
	TotalPrice    float64 `json:"total_price"`
	BookingTime   string  `json:"booking_time"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.MovieID = model.MovieID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.NumberOfSeats = model.NumberOfSeats
	r.TotalPrice = model.TotalPrice
	r.BookingTime = model.BookingTime.Format(constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
