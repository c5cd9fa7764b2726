// Package catalog holds the storefront's entities and the pure listing
// logic (pricing, filtering, cart joins) that the page renderers and
// mutation handlers share.
package catalog

// Product is one catalog entry. The json tags are the persisted document
// format, so they stay camelCase even where Go naming would differ.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"` // category slug
	Price       int      `json:"price"`
	Discount    int      `json:"discount"` // percent, 0-100
	Rating      string   `json:"rating"`   // decimal string, e.g. "4.3"
	Stock       int      `json:"stock"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	IsFlashDeal bool     `json:"isFlashDeal"`
}

// CartItem references a product by id. Entries whose product no longer
// exists stay in the stored cart; readers filter them out.
type CartItem struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// User credentials are stored and compared as plaintext. This is a demo
// store; there is no credential security model.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Seller struct {
	ID    string `json:"id"`
	Store string `json:"store"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	About string `json:"about"`
}

// AuthSession is the identity projection written on login. It never
// carries the password.
type AuthSession struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Category struct {
	Slug string
	Name string
	Icon string
}

// Categories is the fixed set of category slugs a product may reference.
var Categories = []Category{
	{Slug: "electronics", Name: "Electronics", Icon: "💻"},
	{Slug: "fashion", Name: "Fashion", Icon: "👗"},
	{Slug: "groceries", Name: "Groceries", Icon: "🛒"},
	{Slug: "home", Name: "Home & Living", Icon: "🏠"},
	{Slug: "beauty", Name: "Beauty", Icon: "💄"},
	{Slug: "sports", Name: "Sports", Icon: "🏅"},
}

var Brands = []string{
	"Samsung", "Apple", "Xiaomi", "Sony", "LG", "Nike", "Adidas",
	"Puma", "Unilever", "Nestle", "Philips", "Dell", "HP",
}

func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}
