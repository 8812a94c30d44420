package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/okatev/shopflow/internal/domain/model"
)

// The formatters are pure data-to-string functions with no outbound
// calls; dispatching a formatted message is a separate concern (see
// FormatAndSendOrderUpdate).

// FormatOrderConfirmation renders the order confirmation message body.
func FormatOrderConfirmation(orderID string, items []model.OrderItem, total float64, now time.Time) string {
	lines := []string{
		fmt.Sprintf("Order Confirmation - %s", orderID),
		fmt.Sprintf("Date: %s", now.UTC().Format("2006-01-02 15:04")),
		"",
		"Items:",
	}
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("  - %s x%d @ $%.2f", item.ProductName, item.Quantity, item.UnitPrice))
	}
	lines = append(lines, "", fmt.Sprintf("Total: $%.2f", total), "", "Thank you for your purchase!")
	return strings.Join(lines, "\n")
}

// FormatShippingUpdate renders the shipping update message body.
func FormatShippingUpdate(orderID, carrier, trackingNumber, estimatedDelivery string) string {
	if estimatedDelivery == "" {
		estimatedDelivery = "TBD"
	}
	return fmt.Sprintf(
		"Shipping Update - Order %s\nCarrier: %s\nTracking Number: %s\nEstimated Delivery: %s\n",
		orderID, carrier, trackingNumber, estimatedDelivery,
	)
}

// FormatErrorAlert renders an internal monitoring alert.
func FormatErrorAlert(service, errorType, message string, now time.Time) string {
	return fmt.Sprintf(
		"[ALERT] Error in %s\nType: %s\nMessage: %s\nTime: %s\n",
		service, errorType, message, now.UTC().Format(time.RFC3339),
	)
}
