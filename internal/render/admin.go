package render

import (
	"strconv"
	"strings"

	"github.com/nepkart/storefront/internal/catalog"
)

// AdminPage lists every product and renders the add-or-edit form. An
// `edit` query parameter pre-fills the form with that product's fields;
// rating, stock, and the flash flag are not collected and survive a save
// untouched.
func AdminPage(st State, query map[string]string) string {
	var table strings.Builder
	table.WriteString(`<div class="panel wide"><h1>Admin • Products</h1>`)
	table.WriteString(`<table><thead><tr><th>ID</th><th>Title</th><th>Price</th><th>Stock</th><th></th></tr></thead><tbody>`)
	for _, p := range st.Products {
		table.WriteString(`<tr><td>` + esc(p.ID) + `</td>`)
		table.WriteString(`<td>` + esc(p.Title) + `</td>`)
		table.WriteString(`<td>` + money(catalog.PriceAfter(p)) + `</td>`)
		table.WriteString(`<td>` + strconv.Itoa(p.Stock) + `</td>`)
		table.WriteString(`<td class="actions"><a href="/admin?edit=` + esc(p.ID) + `">Edit</a> `)
		table.WriteString(`<form class="inline" method="post" action="/admin/products/delete">`)
		table.WriteString(`<input type="hidden" name="id" value="` + esc(p.ID) + `">`)
		table.WriteString(`<button class="linklike danger" data-del="` + esc(p.ID) + `">Delete</button></form></td></tr>`)
	}
	table.WriteString(`</tbody></table></div>`)

	var editing catalog.Product
	if id := query["edit"]; id != "" {
		for _, p := range st.Products {
			if p.ID == id {
				editing = p
				break
			}
		}
	}

	var form strings.Builder
	form.WriteString(`<div class="panel summary"><div class="side-head">Add / Edit Product</div>`)
	form.WriteString(`<form id="admin-product-form" method="post" action="/admin/products">`)
	form.WriteString(`<input name="id" placeholder="ID (auto if empty)" value="` + esc(editing.ID) + `">`)
	form.WriteString(`<input name="title" required placeholder="Title" value="` + esc(editing.Title) + `">`)
	form.WriteString(`<input name="brand" required placeholder="Brand" value="` + esc(editing.Brand) + `">`)
	form.WriteString(`<select name="category">`)
	for _, c := range catalog.Categories {
		sel := ""
		if editing.Category == c.Slug {
			sel = ` selected`
		}
		form.WriteString(`<option value="` + esc(c.Slug) + `"` + sel + `>` + esc(c.Name) + `</option>`)
	}
	form.WriteString(`</select>`)
	form.WriteString(`<input name="price" type="number" required placeholder="Price" value="` + numValue(editing.Price, editing.ID != "") + `">`)
	form.WriteString(`<input name="discount" type="number" placeholder="Discount %" value="` + numValue(editing.Discount, editing.ID != "") + `">`)
	form.WriteString(`<input name="images" placeholder="Images (comma separated URLs)" value="` + esc(strings.Join(editing.Images, ", ")) + `">`)
	form.WriteString(`<textarea name="description" placeholder="Description">` + esc(editing.Description) + `</textarea>`)
	form.WriteString(`<button>Save</button></form></div>`)

	return section("split-cart", table.String()+form.String())
}

// numValue keeps unfilled numeric inputs blank instead of showing 0.
func numValue(n int, editing bool) string {
	if !editing {
		return ""
	}
	return strconv.Itoa(n)
}
