// README: Keyword-routed intent classification for support utterances.
package intent

import "strings"

type Intent string

const (
	IntentExit        Intent = "exit"
	IntentMaintenance Intent = "maintenance"
	IntentServicing   Intent = "servicing"
	IntentWarranty    Intent = "warranty"
	IntentGeneral     Intent = "general"
	IntentOutOfDomain Intent = "out_of_domain"
)

var maintenanceKeywords = []string{
	"maintain", "maintenance", "maintainance", "maintaining", "maintenance plan",
}

var servicingKeywords = []string{
	"service", "servicing", "services", "schedule service", "service plan",
}

var refrigeratorKeywords = []string{
	"refrigerator", "fridge", "cooling", "freezer", "compressor", "defrost", "temperature",
	"ice maker", "coolant", "refrigerant", "door seal", "power consumption", "energy efficiency",
	"smart fridge", "inverter technology", "multi-door", "single-door", "double-door",
	"humidity control", "vegetable crisper", "water dispenser", "noise issue", "thermostat",
	"food storage", "odors", "auto-defrost", "led display",
}

// Classify maps a raw utterance to an Intent. Evaluation order is fixed and
// first-match-wins; texts matching several keyword sets resolve to the earliest
// intent in this order. Callers depend on that ordering.
func Classify(text string) Intent {
	s := strings.ToLower(strings.TrimSpace(text))

	switch {
	case s == "exit":
		return IntentExit
	case containsAny(s, maintenanceKeywords):
		return IntentMaintenance
	case containsAny(s, servicingKeywords):
		return IntentServicing
	case strings.Contains(s, "warranty"):
		return IntentWarranty
	case containsAny(s, refrigeratorKeywords):
		return IntentGeneral
	default:
		return IntentOutOfDomain
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
