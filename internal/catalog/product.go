package catalog

// Product is one catalog listing. Ids are store-assigned, monotonic and
// never reused after deletion; the client relies on id order for stable
// positional identity.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageRef    string  `json:"image,omitempty"`
	Active      bool    `json:"active"`
}
