package domain

import (
	"context"
	"time"
)

// EmailFrequency is how often a subscriber wants the digest.
type EmailFrequency string

const (
	EmailWeekly  EmailFrequency = "WEEKLY"
	EmailMonthly EmailFrequency = "MONTHLY"
	EmailNever   EmailFrequency = "NEVER"
)

// Subscriber is a mailing-list member following one town.
type Subscriber struct {
	ID        string
	TownID    string
	Email     string
	Name      string
	Frequency EmailFrequency
}

// SubscriberRepository defines read access to digest subscribers.
type SubscriberRepository interface {
	ListByTownID(ctx context.Context, townID string, frequency EmailFrequency) ([]*Subscriber, error)
}

// DigestReport summarizes one digest run.
type DigestReport struct {
	Towns  int
	Sent   int
	Failed int
}

// DigestService sends the periodic event digest.
type DigestService interface {
	SendWeekly(ctx context.Context, now time.Time) (DigestReport, error)
}
