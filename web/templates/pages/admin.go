package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"online-store-frontend/internal/api"
	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/components"
)

// AdminDashboardPage renders the back office landing page.
func AdminDashboardPage(props components.PageProps, productCount, categoryCount int) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<h1>Admin dashboard</h1><div class="admin-cards">`)
		w.F(`<a class="admin-card" href="/admin/products"><h2>Products</h2><p>%d in catalog</p></a>`, productCount)
		w.F(`<a class="admin-card" href="/admin/categories"><h2>Categories</h2><p>%d defined</p></a>`, categoryCount)
		w.Raw(`<a class="admin-card" href="/admin/users"><h2>Users</h2><p>Manage accounts</p></a>`)
		w.Raw(`</div>`)
		return w.Err()
	})
	return components.Layout(props, body)
}

// AdminProductsPage renders the product management table.
func AdminProductsPage(props components.PageProps, products []*models.Product) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<h1>Products</h1><a class="button" href="/admin/products/new">New product</a>`)
		w.Raw(`<table class="admin-table"><thead><tr><th>Name</th><th>Category</th><th>Price</th><th>Stock</th><th></th></tr></thead><tbody>`)
		for _, p := range products {
			w.F(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td>`,
				components.E(p.Name), components.E(p.CategoryName),
				components.E(p.Price.StringFixed(2)), p.StockQuantity)
			w.F(`<td><a href="/admin/products/%d/edit">Edit</a> <form class="inline" method="post" action="/admin/products/%d/delete"><button type="submit">Delete</button></form></td></tr>`, p.ID, p.ID)
		}
		w.Raw(`</tbody></table>`)
		return w.Err()
	})
	return components.Layout(props, body)
}

// AdminProductFormPage renders the product create/edit form. product is
// nil when creating.
func AdminProductFormPage(props components.PageProps, product *models.Product, categories []*models.Category) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		action := "/admin/products"
		title := "New product"
		name, description, price, imageURL := "", "", "", ""
		stock := 0
		categoryID := 0
		if product != nil {
			action = "/admin/products/" + strconv.Itoa(product.ID)
			title = "Edit product"
			name = product.Name
			description = product.Description
			price = product.Price.StringFixed(2)
			stock = product.StockQuantity
			categoryID = product.CategoryID
			imageURL = product.ImageURL
		}
		w.F(`<h1>%s</h1><form class="admin-form" method="post" action="%s" enctype="multipart/form-data">`, components.E(title), action)
		w.F(`<label>Name <input type="text" name="name" value="%s" required></label>`, components.E(name))
		w.F(`<label>Description <textarea name="description">%s</textarea></label>`, components.E(description))
		w.F(`<label>Price <input type="number" name="price" step="0.01" min="0.01" value="%s" required></label>`, components.E(price))
		w.F(`<label>Stock <input type="number" name="stock_quantity" min="0" value="%d" required></label>`, stock)
		w.Raw(`<label>Category <select name="category_id">`)
		for _, c := range categories {
			selected := ""
			if c.ID == categoryID {
				selected = " selected"
			}
			w.F(`<option value="%d"%s>%s</option>`, c.ID, selected, components.E(c.Name))
		}
		w.Raw(`</select></label>`)
		if imageURL != "" {
			w.F(`<img class="preview" src="%s" alt="current image">`, components.E(imageURL))
		}
		w.Raw(`<label>Image <input type="file" name="image" accept="image/*"></label>`)
		w.Raw(`<button type="submit">Save</button></form>`)
		return w.Err()
	})
	return components.Layout(props, body)
}

// AdminCategoriesPage renders category management: the list plus an
// inline create form.
func AdminCategoriesPage(props components.PageProps, categories []*models.Category) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<h1>Categories</h1>`)
		w.Raw(`<form class="inline-form" method="post" action="/admin/categories"><input type="text" name="name" placeholder="Name" required><input type="text" name="description" placeholder="Description"><button type="submit">Add</button></form>`)
		w.Raw(`<table class="admin-table"><thead><tr><th>Name</th><th>Description</th><th></th></tr></thead><tbody>`)
		for _, c := range categories {
			w.F(`<tr><td><form class="inline" method="post" action="/admin/categories/%d"><input type="text" name="name" value="%s"><input type="hidden" name="description" value="%s"><button type="submit">Rename</button></form></td>`,
				c.ID, components.E(c.Name), components.E(c.Description))
			w.F(`<td>%s</td>`, components.E(c.Description))
			w.F(`<td><form class="inline" method="post" action="/admin/categories/%d/delete"><button type="submit">Delete</button></form></td></tr>`, c.ID)
		}
		w.Raw(`</tbody></table>`)
		return w.Err()
	})
	return components.Layout(props, body)
}

// AdminUsersPage renders paged user management with upgrade-to-admin.
func AdminUsersPage(props components.PageProps, page *api.UserPage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.F(`<h1>Users</h1><p class="muted">%d accounts</p>`, page.TotalCount)
		w.Raw(`<table class="admin-table"><thead><tr><th>Name</th><th>Email</th><th>Phone</th><th>Role</th><th></th></tr></thead><tbody>`)
		for _, u := range page.Users {
			role := "User"
			if u.IsAdmin {
				role = "Admin"
			}
			w.F(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
				components.E(u.FullName()), components.E(u.Email), components.E(u.PhoneNumber), role)
			if !u.IsAdmin {
				w.F(`<form class="inline" method="post" action="/admin/users/%d/upgrade"><button type="submit">Make admin</button></form>`, u.ID)
			}
			w.Raw(`</td></tr>`)
		}
		w.Raw(`</tbody></table>`)

		if page.TotalPages > 1 {
			w.Raw(`<div class="pagination">`)
			for i := 1; i <= page.TotalPages; i++ {
				if i == page.Page {
					w.F(`<span class="current">%d</span>`, i)
				} else {
					w.F(`<a href="/admin/users?page=%d">%d</a>`, i, i)
				}
			}
			w.Raw(`</div>`)
		}
		return w.Err()
	})
	return components.Layout(props, body)
}
