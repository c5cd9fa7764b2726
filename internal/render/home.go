package render

import (
	"fmt"
	"strings"

	"github.com/nepkart/storefront/internal/catalog"
)

// HomePage shows the rotating banner, the first dozen flash deals, and the
// category tiles.
func HomePage(st State) string {
	var b strings.Builder

	b.WriteString(`<div class="banner"><div class="banner-track">`)
	for i := 1; i <= 3; i++ {
		b.WriteString(fmt.Sprintf(
			`<div class="banner-slide"><img src="https://picsum.photos/seed/banner-%d/1600/700" alt="banner %d"></div>`, i, i))
	}
	b.WriteString(`</div></div>`)
	banner := section("", b.String())

	var deals strings.Builder
	deals.WriteString(`<div class="row-head"><h2>Flash Deals</h2><a href="/category/all?flash=1">See all</a></div>`)
	deals.WriteString(`<div class="grid grid-6">`)
	shown := 0
	for _, p := range st.Products {
		if !p.IsFlashDeal {
			continue
		}
		deals.WriteString(card(p))
		shown++
		if shown == 12 {
			break
		}
	}
	deals.WriteString(`</div>`)

	var cats strings.Builder
	cats.WriteString(`<h2>Shop by Category</h2><div class="grid grid-6">`)
	for _, c := range catalog.Categories {
		cats.WriteString(`<a class="tile" href="/category/` + esc(c.Slug) + `">`)
		cats.WriteString(`<div class="tile-icon">` + c.Icon + `</div>`)
		cats.WriteString(`<div>` + esc(c.Name) + `</div></a>`)
	}
	cats.WriteString(`</div>`)

	return banner + section("", deals.String()) + section("", cats.String())
}
