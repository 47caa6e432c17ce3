package models

import "strings"

// Product is a single catalog record. Price values are whole rupees.
// Discount is carried exactly as supplied by the catalog source and is
// never recomputed by the pipeline.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Color         string   `json:"color"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	InStock       bool     `json:"inStock"`
	Brand         string   `json:"brand"`
	Sizes         []string `json:"sizes"`
	EcoFriendly   bool     `json:"ecoFriendly"`
	Discount      int      `json:"discount"`
	Source        string   `json:"source,omitempty"`
}

// Filters is the structured predicate extracted from a user message.
// Every field is tri-state: a nil pointer means "not specified", which
// is distinct from an explicit zero value (EcoFriendly=false must not
// mean the same thing as EcoFriendly unset).
type Filters struct {
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Color       *string `json:"color"`
	Brand       *string `json:"brand"`
	Size        *string `json:"size"`
	MinPrice    *int    `json:"minPrice"`
	MaxPrice    *int    `json:"maxPrice"`
	EcoFriendly *bool   `json:"ecoFriendly"`
}

// IsEmpty reports whether no filter field was specified at all.
func (f Filters) IsEmpty() bool {
	return f.Category == nil && f.Subcategory == nil && f.Color == nil &&
		f.Brand == nil && f.Size == nil && f.MinPrice == nil &&
		f.MaxPrice == nil && f.EcoFriendly == nil
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// ChatResponse is the reply envelope of POST /chat.
type ChatResponse struct {
	Reply     string    `json:"reply"`
	Results   []Product `json:"results"`
	Filters   Filters   `json:"filters"`
	Timestamp string    `json:"timestamp"`
}

// ChatMessage is one entry of a session's conversation, as relayed to
// connected clients. Pending marks a typing indicator placeholder.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"` // "user" or "bot"
	Text      string    `json:"text"`
	Timestamp string    `json:"timestamp"`
	Products  []Product `json:"products"`
	Pending   bool      `json:"pending,omitempty"`
}

// StreamEvent is a single server-sent event pushed to subscribers.
type StreamEvent struct {
	Name string      `json:"name"`
	Data interface{} `json:"data"`
}

// WeatherReport is the normalized result of a weather lookup. A nil
// *WeatherReport is the documented "unavailable" outcome and must be
// handled by every caller.
type WeatherReport struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	WindSpeed   float64 `json:"windSpeed"`
}

// Headline is one news item.
type Headline struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

// ContainsFold reports whether substr occurs in s, ignoring case.
// Shared by the filter engine and the catalog query-hint filter.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
