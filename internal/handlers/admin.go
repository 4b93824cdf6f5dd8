package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"online-store-frontend/internal/api"
	"online-store-frontend/internal/middleware"
	"online-store-frontend/internal/models"
	"online-store-frontend/internal/services"
	"online-store-frontend/web/templates/pages"
)

// maxUploadSize bounds the multipart memory for product image uploads.
const maxUploadSize = 10 << 20

// AdminHandler serves the back-office pages. Every route behind it is
// already gated by the admin middleware.
type AdminHandler struct {
	images *services.ImageService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(images *services.ImageService) *AdminHandler {
	return &AdminHandler{images: images}
}

// Dashboard renders the back-office landing page with quick counts.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)

	products, _ := state.API.GetProducts(r.Context())
	categories, _ := state.API.GetCategories(r.Context())

	render(w, r, pages.AdminDashboardPage(pageProps(w, r, "Admin"), len(products), len(categories)))
}

// Products renders the product management listing.
func (h *AdminHandler) Products(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)

	products, err := state.API.GetProducts(r.Context())
	if err != nil {
		failAction(w, r, err, "/admin")
		return
	}
	render(w, r, pages.AdminProductsPage(pageProps(w, r, "Manage Products"), products))
}

// NewProductPage renders the empty product form.
func (h *AdminHandler) NewProductPage(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)

	categories, err := state.API.GetCategories(r.Context())
	if err != nil {
		failAction(w, r, err, "/admin/products")
		return
	}
	render(w, r, pages.AdminProductFormPage(pageProps(w, r, "New Product"), nil, categories))
}

// EditProductPage renders the product form pre-filled for editing.
func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		redirectError(w, r, "/admin/products", "Unknown product")
		return
	}

	product, err := state.API.GetProduct(r.Context(), id)
	if err != nil {
		failAction(w, r, err, "/admin/products")
		return
	}
	categories, err := state.API.GetCategories(r.Context())
	if err != nil {
		failAction(w, r, err, "/admin/products")
		return
	}
	render(w, r, pages.AdminProductFormPage(pageProps(w, r, "Edit Product"), product, categories))
}

// productUpload parses the multipart product form, running any attached
// image through the downscale pass before forwarding.
func (h *AdminHandler) productUpload(r *http.Request) (*api.ProductUpload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.PostFormValue("price")))
	if err != nil {
		price = decimal.Zero
	}
	stock, _ := strconv.Atoi(r.PostFormValue("stock_quantity"))
	categoryID, _ := strconv.Atoi(r.PostFormValue("category_id"))

	upload := &api.ProductUpload{
		Form: &models.ProductForm{
			Name:          strings.TrimSpace(r.PostFormValue("name")),
			Description:   strings.TrimSpace(r.PostFormValue("description")),
			Price:         price,
			StockQuantity: stock,
			CategoryID:    categoryID,
			ImageURL:      strings.TrimSpace(r.PostFormValue("image_url")),
		},
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return upload, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if header.Size == 0 {
		return upload, nil
	}

	prepared, err := h.images.Prepare(file, header.Filename)
	if err != nil {
		return nil, err
	}
	upload.Image = prepared.Data
	upload.ImageName = prepared.Filename
	return upload, nil
}

// CreateProduct handles the new-product form submission.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)

	upload, err := h.productUpload(r)
	if err != nil {
		redirectError(w, r, "/admin/products/new", "Invalid product form: "+err.Error())
		return
	}
	if err := upload.Form.Validate(); err != nil {
		redirectError(w, r, "/admin/products/new", userMessage(err))
		return
	}

	if _, err := state.API.CreateProduct(r.Context(), upload); err != nil {
		failAction(w, r, err, "/admin/products/new")
		return
	}
	redirectNotice(w, r, "/admin/products", "Product created")
}

// UpdateProduct handles the edit-product form submission.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		redirectError(w, r, "/admin/products", "Unknown product")
		return
	}
	origin := "/admin/products/" + strconv.Itoa(id) + "/edit"

	upload, err := h.productUpload(r)
	if err != nil {
		redirectError(w, r, origin, "Invalid product form: "+err.Error())
		return
	}
	if err := upload.Form.Validate(); err != nil {
		redirectError(w, r, origin, userMessage(err))
		return
	}

	if _, err := state.API.UpdateProduct(r.Context(), id, upload); err != nil {
		failAction(w, r, err, origin)
		return
	}
	redirectNotice(w, r, "/admin/products", "Product updated")
}

// DeleteProduct removes a product from the catalog.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		redirectError(w, r, "/admin/products", "Unknown product")
		return
	}

	if err := state.API.DeleteProduct(r.Context(), id); err != nil {
		failAction(w, r, err, "/admin/products")
		return
	}
	redirectNotice(w, r, "/admin/products", "Product deleted")
}

// Categories renders the category management page.
func (h *AdminHandler) Categories(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)

	categories, err := state.API.GetCategories(r.Context())
	if err != nil {
		failAction(w, r, err, "/admin")
		return
	}
	render(w, r, pages.AdminCategoriesPage(pageProps(w, r, "Manage Categories"), categories))
}

func categoryForm(r *http.Request) models.CategoryForm {
	return models.CategoryForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
}

// CreateCategory handles the new-category form.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin/categories", "Invalid form submission")
		return
	}

	form := categoryForm(r)
	if err := form.Validate(); err != nil {
		redirectError(w, r, "/admin/categories", userMessage(err))
		return
	}

	if _, err := state.API.CreateCategory(r.Context(), &form); err != nil {
		failAction(w, r, err, "/admin/categories")
		return
	}
	redirectNotice(w, r, "/admin/categories", "Category created")
}

// UpdateCategory handles the rename form.
func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		redirectError(w, r, "/admin/categories", "Unknown category")
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/admin/categories", "Invalid form submission")
		return
	}

	form := categoryForm(r)
	if err := form.Validate(); err != nil {
		redirectError(w, r, "/admin/categories", userMessage(err))
		return
	}

	if _, err := state.API.UpdateCategory(r.Context(), id, &form); err != nil {
		failAction(w, r, err, "/admin/categories")
		return
	}
	redirectNotice(w, r, "/admin/categories", "Category updated")
}

// DeleteCategory removes a category.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		redirectError(w, r, "/admin/categories", "Unknown category")
		return
	}

	if err := state.API.DeleteCategory(r.Context(), id); err != nil {
		failAction(w, r, err, "/admin/categories")
		return
	}
	redirectNotice(w, r, "/admin/categories", "Category deleted")
}

// Users renders one page of the user listing.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	userPage, err := state.API.GetAllUsers(r.Context(), page, 20)
	if err != nil {
		failAction(w, r, err, "/admin")
		return
	}
	render(w, r, pages.AdminUsersPage(pageProps(w, r, "Manage Users"), userPage))
}

// UpgradeUser grants the admin role to another user.
func (h *AdminHandler) UpgradeUser(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		redirectError(w, r, "/admin/users", "Unknown user")
		return
	}

	origin := backTo(r, "/admin/users")
	if err := state.API.UpgradeToAdmin(r.Context(), id); err != nil {
		failAction(w, r, err, origin)
		return
	}
	redirectNotice(w, r, origin, "User upgraded to admin")
}
