package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"exit lowercase", "exit", IntentExit},
		{"exit uppercase", "EXIT", IntentExit},
		{"exit padded", "  Exit  ", IntentExit},
		{"exit embedded in sentence is not exit", "i want to exit my warranty", IntentWarranty},

		{"maintenance keyword", "tell me about my maintenance plan", IntentMaintenance},
		{"maintenance misspelling", "what does maintainance cost", IntentMaintenance},
		{"servicing keyword", "i want to schedule service", IntentServicing},
		{"service substring", "what services do you offer", IntentServicing},
		{"warranty substring", "is my warranty still valid", IntentWarranty},

		{"domain question", "why is my freezer making a noise issue", IntentGeneral},
		{"domain question mixed case", "My FRIDGE is warm", IntentGeneral},
		{"out of domain", "what is the capital of france", IntentOutOfDomain},
		{"empty input", "", IntentOutOfDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

// The fixed evaluation order is a contract: when keyword sets overlap the
// earlier intent always wins.
func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"maintenance beats servicing", "i need maintenance and servicing", IntentMaintenance},
		{"maintenance beats warranty", "does my maintenance plan cover warranty", IntentMaintenance},
		{"servicing beats warranty", "schedule service under warranty", IntentServicing},
		{"warranty beats domain keywords", "fridge warranty question", IntentWarranty},
		{"servicing beats domain keywords", "my freezer needs servicing", IntentServicing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}
