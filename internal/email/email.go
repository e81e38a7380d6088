package email

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/easytripzy/tripbooking/internal/kafka"
)

// Sender delivers booking notifications. The transport is a stub that logs the
// outgoing message; a real SMTP or provider client slots in behind the same
// method.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	logrus.WithFields(logrus.Fields{
		"user_id":      event.UserID,
		"booking_id":   event.BookingID,
		"kind":         event.Kind,
		"event":        event.Type,
		"service_date": event.ServiceDate.Format("2006-01-02"),
	}).Info("send booking notification")
	return nil
}
