package domain

// Product statuses. A listing starts active and may only move to sold.
const (
	StatusActive = "active"
	StatusSold   = "sold"
)

// Product is a marketplace listing stored in the "products" collection.
// The document ID is assigned by the store and is not part of the document
// body. UserDisplayName is a snapshot of the seller's name at listing time,
// never re-joined against the identity provider.
type Product struct {
	ID              string   `json:"id" firestore:"-"`
	Title           string   `json:"title" firestore:"title"`
	Description     string   `json:"description" firestore:"description"`
	Price           float64  `json:"price" firestore:"price"`
	Category        string   `json:"category" firestore:"category"`
	Subcategory     string   `json:"subcategory" firestore:"subcategory"`
	Images          []string `json:"images" firestore:"images"`
	UserID          string   `json:"userId" firestore:"userId"`
	UserDisplayName string   `json:"userDisplayName" firestore:"userDisplayName"`
	CreatedAt       string   `json:"createdAt" firestore:"createdAt"`
	Status          string   `json:"status" firestore:"status"`
	Phone           string   `json:"phone" firestore:"phone"`
}

// Owner reports whether the given uid owns this listing.
func (p *Product) Owner(uid string) bool {
	return p.UserID == uid
}
