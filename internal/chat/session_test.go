package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"frostdesk/internal/modules/customer"
	"frostdesk/internal/modules/scheduling"
)

type stubAnswerer struct {
	reply string
	err   error
	asked []string
}

func (s *stubAnswerer) Ask(_ context.Context, prompt string) (string, error) {
	s.asked = append(s.asked, prompt)
	return s.reply, s.err
}

type fixture struct {
	store    *customer.MemoryStore
	answerer *stubAnswerer
	session  *Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := customer.NewMemoryStore()
	store.AddProduct(customer.Product{ID: 2, Name: "Samsung Double Door", Category: "Refrigerator"})
	store.AddCustomer(customer.Customer{
		ID:              2,
		Name:            "Bob Smith",
		Email:           "bob@example.com",
		ProductID:       2,
		WarrantyExpiry:  time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
		MaintenancePlan: customer.PlanStandard,
	})

	answerer := &stubAnswerer{reply: "canned answer"}
	customers := customer.NewService(store)
	scheduler := scheduling.NewService(store, answerer)

	session, err := NewSession(context.Background(), "bob@example.com", customers, scheduler, answerer)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return &fixture{store: store, answerer: answerer, session: session}
}

func (f *fixture) handle(t *testing.T, input string) string {
	t.Helper()
	reply, err := f.session.Handle(context.Background(), input)
	if err != nil {
		t.Fatalf("Handle(%q) error = %v", input, err)
	}
	return reply
}

func TestNewSessionUnregisteredEmail(t *testing.T) {
	store := customer.NewMemoryStore()
	customers := customer.NewService(store)
	scheduler := scheduling.NewService(store, &stubAnswerer{})

	_, err := NewSession(context.Background(), "ghost@example.com", customers, scheduler, &stubAnswerer{})
	if !errors.Is(err, ErrUnregistered) {
		t.Fatalf("NewSession(unregistered) = %v, want ErrUnregistered", err)
	}
}

func TestSessionExit(t *testing.T) {
	f := newFixture(t)

	reply := f.handle(t, "EXIT")
	if reply != GoodbyeReply {
		t.Errorf("reply = %q", reply)
	}
	if !f.session.Done() {
		t.Error("session should be done after exit")
	}
}

func TestSessionWarranty(t *testing.T) {
	f := newFixture(t)

	reply := f.handle(t, "is my warranty still valid?")
	if !strings.Contains(reply, "Bob Smith") || !strings.Contains(reply, "Samsung Double Door") || !strings.Contains(reply, "2026-11-05") {
		t.Errorf("reply = %q", reply)
	}
}

func TestSessionMaintenance(t *testing.T) {
	f := newFixture(t)
	f.answerer.reply = "Premium would suit you"

	reply := f.handle(t, "what maintenance plan do i have?")
	if !strings.Contains(reply, "'Standard'") || !strings.Contains(reply, "Premium would suit you") {
		t.Errorf("reply = %q", reply)
	}
	if len(f.answerer.asked) != 1 || !strings.Contains(f.answerer.asked[0], "Samsung Double Door") {
		t.Errorf("prompt = %v", f.answerer.asked)
	}
}

// A text with both maintenance and servicing keywords routes to maintenance,
// not into a scheduling dialogue.
func TestSessionPriorityOrder(t *testing.T) {
	f := newFixture(t)

	reply := f.handle(t, "i want maintenance and servicing")
	if !strings.Contains(reply, "maintenance plan") {
		t.Errorf("reply = %q", reply)
	}
	if !strings.Contains(f.handle(t, "exit"), "Goodbye") {
		t.Error("no scheduling dialogue should be pending")
	}
}

func TestSessionGeneralQuestion(t *testing.T) {
	f := newFixture(t)
	f.answerer.reply = "Set the thermostat to 4C."

	reply := f.handle(t, "what temperature should my fridge be?")
	if reply != "Set the thermostat to 4C." {
		t.Errorf("reply = %q", reply)
	}
	if len(f.answerer.asked) != 1 || !strings.Contains(f.answerer.asked[0], "specifically about refrigerators") {
		t.Errorf("prompt = %v", f.answerer.asked)
	}
}

func TestSessionGeneralQuestionTransportFailure(t *testing.T) {
	f := newFixture(t)
	f.answerer.err = errors.New("gemini: generate content: timeout")

	reply := f.handle(t, "my freezer is noisy")
	if !strings.Contains(reply, "unavailable") {
		t.Errorf("transport failures become inline warnings, got %q", reply)
	}
}

func TestSessionOutOfDomain(t *testing.T) {
	f := newFixture(t)

	if reply := f.handle(t, "what is the capital of france?"); reply != OutOfDomainReply {
		t.Errorf("reply = %q", reply)
	}
	if len(f.answerer.asked) != 0 {
		t.Error("out-of-domain input must not reach the answer service")
	}
}

func TestSessionSchedulingDialogue(t *testing.T) {
	f := newFixture(t)

	reply := f.handle(t, "i want to schedule service")
	if !strings.Contains(reply, "(yes/no)") {
		t.Fatalf("reply = %q", reply)
	}

	reply = f.handle(t, "yes")
	if !strings.Contains(reply, "YYYY-MM-DD") {
		t.Fatalf("reply = %q", reply)
	}

	// date input is consumed by the flow, not the intent classifier
	reply = f.handle(t, "not-a-date")
	if !strings.Contains(reply, "Invalid date format") {
		t.Fatalf("reply = %q", reply)
	}

	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	reply = f.handle(t, future)
	if !strings.Contains(reply, "scheduled") {
		t.Fatalf("reply = %q", reply)
	}

	// flow is finished; routing is back to the classifier
	if reply := f.handle(t, "what is the capital of france?"); reply != OutOfDomainReply {
		t.Errorf("reply after flow = %q", reply)
	}
}

func TestSessionSchedulingDecline(t *testing.T) {
	f := newFixture(t)

	f.handle(t, "schedule service please")
	reply := f.handle(t, "no")
	if !strings.Contains(reply, "no service scheduled") {
		t.Errorf("reply = %q", reply)
	}

	c, err := f.store.FindByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if c.LastServiceDate != nil {
		t.Errorf("declining must not persist a date, got %v", c.LastServiceDate)
	}
}
