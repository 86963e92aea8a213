// README: Interactive console client; chat and feedback modes over typed or spoken input.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"frostdesk/internal/ai"
	"frostdesk/internal/chat"
	"frostdesk/internal/config"
	"frostdesk/internal/infra"
	"frostdesk/internal/logger"
	"frostdesk/internal/modules/customer"
	"frostdesk/internal/modules/feedback"
	"frostdesk/internal/modules/scheduling"
	"frostdesk/internal/seed"
	"frostdesk/internal/speech"
	"frostdesk/internal/types"
)

func main() {
	log := logger.New()

	var (
		demo     = flag.Bool("demo", false, "run against in-memory stores seeded from the manifest")
		seedFile = flag.String("seed", "seed/data.yaml", "seed manifest for demo mode")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	ctx := context.Background()

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.WithError(err).Fatal("init gemini")
	}
	defer gemini.Close()

	var answerer ai.Answerer = gemini
	if cfg.Redis.Addr != "" {
		answerer = ai.NewAnswerCache(answerer, infra.NewRedis(cfg.Redis.Addr), time.Hour)
	}

	var (
		customerStore scheduling.CustomerStore
		customerRead  customer.Reader
		fbStore       feedback.FeedbackStore
	)
	if *demo {
		mem, fbMem, err := demoStores(*seedFile)
		if err != nil {
			log.WithError(err).Fatal("load demo data")
		}
		customerStore, customerRead, fbStore = mem, mem, fbMem
	} else {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.WithError(err).Fatal("connect db")
		}
		defer pool.Close()
		store := customer.NewStore(pool)
		customerStore, customerRead = store, store
		fbStore = feedback.NewStore(pool)
	}

	customerSvc := customer.NewService(customerRead)
	schedulingSvc := scheduling.NewService(customerStore, answerer)
	feedbackSvc := feedback.NewService(fbStore, log)

	var recognizer speech.Recognizer
	if cfg.Speech.ServiceURL != "" {
		recognizer = speech.NewClient(cfg.Speech)
	}

	in := bufio.NewScanner(os.Stdin)

	email := prompt(in, "Enter your registered email: ")
	session, err := chat.NewSession(ctx, email, customerSvc, schedulingSvc, answerer)
	if err != nil {
		if errors.Is(err, chat.ErrUnregistered) {
			fmt.Println("Error: This email is not registered in our system.")
			os.Exit(1)
		}
		log.WithError(err).Fatal("open session")
	}

	mode := strings.ToLower(prompt(in, "Type 'chatbot' to use the chatbot or 'feedback' to leave feedback: "))
	switch mode {
	case "chatbot":
		runChat(ctx, in, session, recognizer, cfg.Speech.MaxAttempts, log)
	case "feedback":
		runFeedback(ctx, in, customerSvc, feedbackSvc, email)
	default:
		fmt.Println("Invalid choice. Please restart and select 'chatbot' or 'feedback'.")
		os.Exit(1)
	}
}

func runChat(ctx context.Context, in *bufio.Scanner, session *chat.Session, recognizer speech.Recognizer, maxAttempts int, log *logger.Logger) {
	for !session.Done() {
		input := readTurn(ctx, in, recognizer, maxAttempts, log)
		if input == "" {
			continue
		}
		reply, err := session.Handle(ctx, input)
		if err != nil {
			log.WithError(err).Error("handle input")
			continue
		}
		fmt.Println("Bot:", reply)
	}
}

// readTurn collects one utterance. With a recognizer configured the user picks
// typing or speaking each turn; failed captures fall back to typing.
func readTurn(ctx context.Context, in *bufio.Scanner, recognizer speech.Recognizer, maxAttempts int, log *logger.Logger) string {
	if recognizer == nil {
		return strings.ToLower(prompt(in, "You: "))
	}

	choice := strings.ToLower(prompt(in, "Do you want to type or speak? (type/speak): "))
	if choice != "speak" {
		return strings.ToLower(prompt(in, "You: "))
	}

	fmt.Println("Listening...")
	text, err := speech.CaptureWithRetry(ctx, recognizer, maxAttempts, log)
	if err != nil {
		fmt.Println("Could not capture speech, please type instead.")
		return strings.ToLower(prompt(in, "You (type): "))
	}
	fmt.Println("Recognized:", text)
	return text
}

func runFeedback(ctx context.Context, in *bufio.Scanner, customers *customer.Service, svc *feedback.Service, email string) {
	view, err := customers.Resolve(ctx, email)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	for {
		text := prompt(in, "Your feedback (or 'exit'): ")
		if text == "" || strings.EqualFold(text, "exit") {
			fmt.Println(chat.GoodbyeReply)
			return
		}
		res, err := svc.Process(ctx, view.CustomerID, text)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println("Sentiment:", res.Sentiment)
		for _, item := range res.ActionItems {
			fmt.Println("  -", item)
		}
		fmt.Println(res.Notice)
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// demoStores builds in-memory stores from the seed manifest so the console
// client runs without Postgres.
func demoStores(path string) (*customer.MemoryStore, *feedback.MemoryStore, error) {
	m, err := seed.Load(path)
	if err != nil {
		return nil, nil, err
	}

	customers := customer.NewMemoryStore()
	emailToID := make(map[string]int64, len(m.Customers))
	for _, p := range m.Products {
		customers.AddProduct(customer.Product{
			ID:             p.ID,
			Name:           p.Name,
			Category:       p.Category,
			WarrantyMonths: p.WarrantyMonths,
			Price:          p.Price,
		})
	}
	for i, c := range m.Customers {
		expiry, err := types.ParseDate(c.WarrantyExpiry)
		if err != nil {
			return nil, nil, err
		}
		var lastService *time.Time
		if c.LastServiceDate != "" {
			d, err := types.ParseDate(c.LastServiceDate)
			if err != nil {
				return nil, nil, err
			}
			lastService = &d
		}
		id := int64(i + 1)
		emailToID[c.Email] = id
		customers.AddCustomer(customer.Customer{
			ID:              id,
			Name:            c.Name,
			Email:           c.Email,
			ProductID:       c.ProductID,
			WarrantyExpiry:  expiry,
			LastServiceDate: lastService,
			MaintenancePlan: customer.Plan(c.MaintenancePlan),
			Sentiment:       c.Sentiment,
		})
	}

	fb := feedback.NewMemoryStore()
	for i, a := range m.Agents {
		fb.AddAgent(feedback.Agent{ID: int64(i + 1), Name: a.Name, Email: a.Email, Phone: a.Phone})
	}
	for i, o := range m.Offers {
		valid, err := types.ParseDate(o.ValidUntil)
		if err != nil {
			return nil, nil, err
		}
		fb.AddOffer(feedback.Offer{ID: int64(i + 1), Details: o.Details, ValidUntil: valid})
	}
	for _, f := range m.Feedback {
		if id, ok := emailToID[f.CustomerEmail]; ok {
			if _, err := fb.InsertFeedback(context.Background(), id, f.Text, feedback.Sentiment(f.Sentiment)); err != nil {
				return nil, nil, err
			}
		}
	}
	return customers, fb, nil
}
