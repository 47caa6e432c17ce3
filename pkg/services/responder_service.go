package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"shopmate-api/pkg/models"
)

const (
	shoppingSystemPrompt = "You are ShopMate, a friendly retail shopping assistant for an Indian online store. You help customers find clothing, footwear and accessories, answer questions about prices in rupees, discounts and eco-friendly options. Only recommend products from the catalog excerpt provided. Keep your reply under 150 words."

	generalSystemPrompt = "You are ShopMate, a friendly retail shopping assistant. The customer's message is not about a specific product, so answer helpfully and conversationally, and gently mention that you can help them find clothing, footwear and accessories. Keep your reply under 150 words."
)

// Cities recognized by the weather intent. The first city found in the
// message wins; defaultCity applies when none matches.
var (
	knownCities = []string{"delhi", "mumbai", "bangalore", "chennai", "kolkata", "hyderabad", "pune", "jaipur", "ahmedabad"}
	defaultCity = "Delhi"
)

var shoppingKeywords = []string{
	"show", "find", "buy", "price", "cost", "under", "cheap", "discount",
	"product", "looking for", "want", "need", "jeans", "shirt", "tshirt",
	"jacket", "sneaker", "shoe", "bag", "wear",
}

// intentRoute pairs a message predicate with its reply handler. Routes
// are evaluated in declaration order and the first match wins.
type intentRoute struct {
	name   string
	match  func(msg string) bool
	handle func(ctx context.Context, msg string) string
}

// ResponderService turns a user message and its filtered product subset
// into a natural-language reply. Special intents short-circuit to the
// data providers; everything else goes to the language model with a
// deterministic templated fallback, so a reply is produced even with
// no working credential at all.
type ResponderService struct {
	llm       Completer
	providers *ProviderService
	routes    []intentRoute
}

// NewResponderService creates a responder. llm may be nil.
func NewResponderService(llm Completer, providers *ProviderService) *ResponderService {
	rs := &ResponderService{
		llm:       llm,
		providers: providers,
	}

	rs.routes = []intentRoute{
		{
			name:   "weather",
			match:  func(msg string) bool { return containsAny(msg, "weather", "temperature") },
			handle: rs.weatherReply,
		},
		{
			name:   "news",
			match:  func(msg string) bool { return containsAny(msg, "news", "headlines") },
			handle: rs.newsReply,
		},
		{
			name:   "joke",
			match:  func(msg string) bool { return containsAny(msg, "joke", "funny") },
			handle: func(_ context.Context, _ string) string { return "Here's one for you: " + rs.providers.Joke() },
		},
		{
			name:   "fact",
			match:  func(msg string) bool { return containsAny(msg, "fact", "interesting") },
			handle: func(_ context.Context, _ string) string { return "Did you know? " + rs.providers.Fact() },
		},
	}

	return rs
}

// Compose produces the reply for a message. Special-intent replies
// carry no product list; product and general replies return the
// filtered subset unchanged.
func (rs *ResponderService) Compose(ctx context.Context, message string, products []models.Product) (string, []models.Product) {
	msg := strings.ToLower(message)

	for _, route := range rs.routes {
		if route.match(msg) {
			return route.handle(ctx, message), []models.Product{}
		}
	}

	if len(products) > 0 {
		return rs.productReply(ctx, message, products), products
	}
	return rs.generalReply(ctx, message), products
}

// weatherReply formats the weather for the first recognized city in
// the message. A nil report is the provider's documented unavailable
// outcome, not an error.
func (rs *ResponderService) weatherReply(_ context.Context, message string) string {
	city := defaultCity
	msg := strings.ToLower(message)
	for _, candidate := range knownCities {
		if strings.Contains(msg, candidate) {
			city = strings.ToUpper(candidate[:1]) + candidate[1:]
			break
		}
	}

	report := rs.providers.Weather(city)
	if report == nil {
		return fmt.Sprintf("Sorry, I couldn't fetch the weather for %s right now. Please try again in a bit!", city)
	}

	return fmt.Sprintf("It's currently %.0f°C in %s with %s (feels like %.0f°C, humidity %d%%).",
		report.Temperature, report.City, report.Condition, report.FeelsLike, report.Humidity)
}

// newsReply formats up to three headlines as a numbered list.
func (rs *ResponderService) newsReply(_ context.Context, _ string) string {
	headlines := rs.providers.News("general", 3)
	if len(headlines) == 0 {
		return "Sorry, I couldn't fetch the news right now. Please try again later!"
	}

	var b strings.Builder
	b.WriteString("Here are today's top headlines:\n")
	for i, headline := range headlines {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, headline.Title, headline.Source)
	}
	return strings.TrimRight(b.String(), "\n")
}

// productReply asks the language model for a reply grounded in the
// filtered products, degrading to a templated summary.
func (rs *ResponderService) productReply(ctx context.Context, message string, products []models.Product) string {
	if rs.llm != nil {
		prompt := fmt.Sprintf("Customer message: %s\n\nMatching catalog excerpt:\n%s", message, groundingContext(products))
		reply, err := rs.llm.Complete(ctx, shoppingSystemPrompt, prompt, 300, 0.7)
		if err == nil && reply != "" {
			return reply
		}
		log.Printf("LLM product reply failed, using templated reply: %v", err)
	}
	return rs.templatedReply(message, products)
}

// generalReply asks the language model without product grounding,
// degrading to the canned conversational intents.
func (rs *ResponderService) generalReply(ctx context.Context, message string) string {
	if rs.llm != nil {
		reply, err := rs.llm.Complete(ctx, generalSystemPrompt, message, 300, 0.7)
		if err == nil && reply != "" {
			return reply
		}
		log.Printf("LLM general reply failed, using canned reply: %v", err)
	}
	return rs.templatedReply(message, nil)
}

// groundingContext renders the product subset as structured text for
// the language model prompt.
func groundingContext(products []models.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- %s | Rs.%d | %s | %s | rating %.1f | %d%% off | eco-friendly: %t\n",
			p.Name, p.Price, p.Category, p.Brand, p.Rating, p.Discount, p.EcoFriendly)
	}
	return b.String()
}

// templatedReply is the dependency-free last line of defense: it must
// produce a coherent, on-topic reply for every input.
func (rs *ResponderService) templatedReply(message string, products []models.Product) string {
	msg := strings.ToLower(message)

	if containsAny(msg, shoppingKeywords...) {
		if len(products) > 0 {
			ecoCount := 0
			dealCount := 0
			for _, p := range products {
				if p.EcoFriendly {
					ecoCount++
				}
				if p.Discount >= 30 {
					dealCount++
				}
			}
			return fmt.Sprintf("I found %d products matching your request! %d of them are eco-friendly and %d have discounts of 30%% or more. Take a look below. 🛍️",
				len(products), ecoCount, dealCount)
		}
		return "Sorry! I couldn't find matching products. Try changing the query, a different color, category or budget usually helps."
	}

	switch {
	case containsAny(msg, "hello", "hey", "hi"):
		return "Hi there! 👋 I'm ShopMate, your shopping assistant. Ask me for jeans, sneakers, jackets and more, or try \"show me blue jeans under 2000\"."
	case containsAny(msg, "weather", "temperature"):
		return "I couldn't reach the weather service just now, but I'm always happy to help you shop!"
	case containsAny(msg, "time"):
		return fmt.Sprintf("It's %s right now. Anything you'd like to shop for?", time.Now().Format("3:04 PM"))
	case containsAny(msg, "help", "what can you do"):
		return "I can find products by color, category, brand, size, budget and eco-friendliness, tell you the weather, share the news, and even crack a joke. What would you like?"
	default:
		return "I'm not sure I caught that. Could you tell me a bit more about what you're looking for?"
	}
}

// containsAny reports whether msg contains any of the given keywords.
func containsAny(msg string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(msg, keyword) {
			return true
		}
	}
	return false
}
