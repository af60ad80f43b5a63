package reservation

import (
	"fmt"
	"time"
)

const nightsPerDay = 24 * time.Hour

// StayRange is a half-open calendar-date interval [checkIn, checkOut).
// The time-of-day component is discarded; a guest occupies the room on
// checkIn night through the night before checkOut.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := toDate(checkIn)
	out := toDate(checkOut)
	if !in.Before(out) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s StayRange) CheckIn() time.Time {
	return s.checkIn
}

func (s StayRange) CheckOut() time.Time {
	return s.checkOut
}

func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn) / nightsPerDay)
}

// Overlaps applies the half-open rule: [a,b) and [c,d) conflict iff
// a < d && c < b. Back-to-back stays sharing an endpoint do not conflict.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

// Money is an amount in cents of the single implicit currency.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) MultiplyBy(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
