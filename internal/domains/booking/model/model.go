package model

import (
	"time"

	"cinetix/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldMovieID       = "movie_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldNumberOfSeats = "number_of_seats"
	FieldTotalPrice    = "total_price"
	FieldBookingTime   = "booking_time"
)

type Booking struct {
	ID            string    `db:"id"`
	MovieID       string    `db:"movie_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	NumberOfSeats int       `db:"number_of_seats"`
	TotalPrice    float64   `db:"total_price"`
	BookingTime   time.Time `db:"booking_time"`
	model.Metadata
}
