// Package queue defines message payloads exchanged over the message broker.
package queue

// EmailQueueName is the durable queue all outbound email flows through.
const EmailQueueName = "email.outbound"

// Kinds of outbound email. Carried on the event so the consumer can log
// delivery outcomes per flow without parsing subjects.
const (
	EmailKindVerification     = "verification"
	EmailKindCardAlert        = "card_alert"
	EmailKindAffiliateWelcome = "affiliate_welcome"
)

// EmailRequestedEvent is published whenever a request handler needs an
// email delivered. Publishing is fire-and-forget: the HTTP response is
// sent before (and regardless of whether) delivery happens. The event
// carries the fully rendered message so the consumer needs no access to
// the primary database.
type EmailRequestedEvent struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    bool   `json:"is_html"`
}
