package handler

// Outbound email bodies. Messages are rendered here, attached to an
// EmailRequestedEvent and published to the broker; handlers never block
// on delivery.

import (
	"context"
	"fmt"
	"log"

	"github.com/shopluxe/backend/internal/catalog"
	"github.com/shopluxe/backend/internal/queue"
	queue_publisher "github.com/shopluxe/backend/internal/service"
)

// publishEmail is a package-level indirection over the broker publisher
// so tests can capture outbound mail without a running broker.
var publishEmail = queue_publisher.PublishEmailRequested

// dispatchEmail publishes fire-and-forget: the caller's response never
// waits on the broker, and a failed publish is logged, not surfaced.
func dispatchEmail(ev queue.EmailRequestedEvent) {
	publish := publishEmail
	go func() {
		if err := publish(context.Background(), ev); err != nil {
			log.Printf("email dispatch: %s to %s failed: %v", ev.Kind, ev.To, err)
		}
	}()
}

// verificationEmail carries the signup confirmation code.
func verificationEmail(to, code string) queue.EmailRequestedEvent {
	body := fmt.Sprintf(`<html>
<body>
    <h2>Welcome to ShopLuxe!</h2>
    <p>Your verification code is: <strong>%s</strong></p>
    <p>Enter this code to verify your account and start shopping luxury items.</p>
    <p>Best regards,<br>ShopLuxe Team</p>
</body>
</html>`, code)
	return queue.EmailRequestedEvent{
		Kind:    queue.EmailKindVerification,
		To:      to,
		Subject: "Verify Your ShopLuxe Account",
		Body:    body,
		HTML:    true,
	}
}

// cardAlertEmail notifies the operator mailbox of a card payment that
// needs manual processing. This is the one place the unmasked card
// number, expiry and CVV leave the service; they are never written to
// the database.
func cardAlertEmail(operator, orderID string, p catalog.Product, card cardInfo) queue.EmailRequestedEvent {
	body := fmt.Sprintf(`<html>
<body>
    <h3>New Card Payment Received</h3>
    <p><strong>Order ID:</strong> %s</p>
    <p><strong>Product:</strong> %s</p>
    <p><strong>Amount:</strong> $%.2f</p>
    <p><strong>Card Number:</strong> %s</p>
    <p><strong>Expiry:</strong> %s/%s</p>
    <p><strong>CVV:</strong> %s</p>
    <p><strong>Cardholder:</strong> %s</p>
    <p>Please process this payment manually.</p>
</body>
</html>`, orderID, p.Name, p.FinalPrice, card.CardNumber, card.ExpiryMonth, card.ExpiryYear, card.CVV, card.CardholderName)
	return queue.EmailRequestedEvent{
		Kind:    queue.EmailKindCardAlert,
		To:      operator,
		Subject: "New Card Payment - ShopLuxe",
		Body:    body,
		HTML:    true,
	}
}

// affiliateWelcomeEmail greets a newly enrolled affiliate with their
// referral code.
func affiliateWelcomeEmail(to, code string) queue.EmailRequestedEvent {
	body := fmt.Sprintf(`<html>
<body>
    <h2>Welcome to ShopLuxe Affiliate Program!</h2>
    <p>Your unique affiliate code is: <strong>%s</strong></p>
    <p>You'll earn 4%% commission on each sale, with +1%% for every 10 confirmed sales.</p>
    <p>Start sharing your affiliate links and earn commissions!</p>
    <p>Best regards,<br>ShopLuxe Team</p>
</body>
</html>`, code)
	return queue.EmailRequestedEvent{
		Kind:    queue.EmailKindAffiliateWelcome,
		To:      to,
		Subject: "Welcome to ShopLuxe Affiliate Program",
		Body:    body,
		HTML:    true,
	}
}
