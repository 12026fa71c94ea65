package domain

// EngagementItemCount is the fixed number of engagement cards on the home
// page. The three slots are edited in place, never added or removed.
const EngagementItemCount = 3

// Hero is the home page banner section.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
}

// EngagementItem is one of the three fixed engagement cards.
type EngagementItem struct {
	Icon        string `json:"icon"` // icon tag, e.g. "leaf", "users", "globe"
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Engagement is the "our commitment" home page section.
type Engagement struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	ImageURL string           `json:"imageUrl"`
	Items    []EngagementItem `json:"items"` // always exactly EngagementItemCount entries
}

// FAQItem is one question/answer pair. The FAQ list is variable length.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQ is the frequently-asked-questions home page section.
type FAQ struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Items    []FAQItem `json:"items"`
}

// HomePageContent is the singleton document backing the home page.
type HomePageContent struct {
	Hero       Hero       `json:"hero"`
	Engagement Engagement `json:"engagement"`
	FAQ        FAQ        `json:"faq"`
}
