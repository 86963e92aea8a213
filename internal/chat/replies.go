// README: Canned and AI-backed reply builders shared by the CLI session and the HTTP API.
package chat

import (
	"context"
	"fmt"

	"frostdesk/internal/ai"
	"frostdesk/internal/modules/customer"
	"frostdesk/internal/types"
)

const (
	OutOfDomainReply = "I can only assist with refrigerator-related queries. " +
		"Let me know if you need help with refrigerator warranty, maintenance, or servicing."
	GoodbyeReply = "Goodbye!"
)

// WarrantyReply formats the warranty lookup response.
func WarrantyReply(v *customer.View) string {
	return fmt.Sprintf("Hello %s, your %s has a warranty until %s.",
		v.Name, v.ProductModel, types.FormatDate(v.WarrantyExpiry))
}

// MaintenanceReply reports the current plan and asks the answer service for a
// recommendation. An answer-service failure becomes an inline note; the current
// plan is always reported.
func MaintenanceReply(ctx context.Context, answerer ai.Answerer, v *customer.View) string {
	suggestion, err := answerer.Ask(ctx, ai.MaintenancePlanPrompt(v.ProductModel, string(v.MaintenancePlan)))
	if err != nil {
		suggestion = "recommendation unavailable: " + err.Error()
	}
	return fmt.Sprintf("Hello %s, your current maintenance plan is '%s'. Suggested plan: %s",
		v.Name, v.MaintenancePlan, suggestion)
}

// GeneralReply forwards a refrigerator-domain question to the answer service.
func GeneralReply(ctx context.Context, answerer ai.Answerer, input string) string {
	answer, err := answerer.Ask(ctx, ai.QAPrompt(input))
	if err != nil {
		return "Sorry, the answer service is unavailable right now: " + err.Error()
	}
	return answer
}
