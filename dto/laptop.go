package dto

// LaptopForm carries the multipart form fields for creating or updating a
// listing. All values arrive as strings; the service parses and validates.
type LaptopForm struct {
	Title        string
	Description  string
	Price        string
	Brand        string
	Model        string
	Processor    string
	RAM          string
	Storage      string
	ScreenSize   string
	Condition    string
	Year         string
	ContactEmail string
	ContactPhone string
	Status       string
}

// LaptopFilter describes the browse query. Nil price bounds mean unbounded.
type LaptopFilter struct {
	Search    string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	Condition string
	Status    string

	// SellerIDs restricts results to these sellers when non-nil
	// (affiliation scoping and my-listings).
	SellerIDs []string
}
