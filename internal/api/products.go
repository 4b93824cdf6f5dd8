package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"online-store-frontend/internal/models"
)

// productPayload is the backend's product shape. The image lives under
// either ImageUrl or ProductImagePath depending on how it was uploaded.
type productPayload struct {
	ID               int             `json:"Id"`
	Name             string          `json:"Name"`
	Description      string          `json:"Description"`
	Price            decimal.Decimal `json:"Price"`
	StockQuantity    int             `json:"StockQuantity"`
	ImageURL         string          `json:"ImageUrl"`
	ProductImagePath string          `json:"ProductImagePath"`
	CategoryID       int             `json:"CategoryId"`
	CategoryName     string          `json:"CategoryName"`
	IsActive         *bool           `json:"IsActive"`
	IsFeatured       bool            `json:"IsFeatured"`
	AverageRating    float64         `json:"AverageRating"`
	TotalReviews     int             `json:"TotalReviews"`
	CreatedDate      time.Time       `json:"CreatedDate"`
}

func (p *productPayload) Product() *models.Product {
	image := p.ImageURL
	if image == "" {
		image = p.ProductImagePath
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return &models.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		ImageURL:      image,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		IsActive:      active,
		IsFeatured:    p.IsFeatured,
		AverageRating: p.AverageRating,
		TotalReviews:  p.TotalReviews,
		CreatedDate:   p.CreatedDate,
	}
}

// productListPayload tolerates both response shapes the backend uses: a
// bare array or an object wrapping it under Products.
type productListPayload struct {
	Products []productPayload
}

func (l *productListPayload) UnmarshalJSON(data []byte) error {
	var plain []productPayload
	if err := json.Unmarshal(data, &plain); err == nil {
		l.Products = plain
		return nil
	}
	var wrapped struct {
		Products []productPayload `json:"Products"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	l.Products = wrapped.Products
	return nil
}

// GetProducts fetches the full catalog.
func (c *Client) GetProducts(ctx context.Context) ([]*models.Product, error) {
	var payload productListPayload
	if err := c.do(ctx, http.MethodGet, "/Products", nil, &payload); err != nil {
		return nil, err
	}
	products := make([]*models.Product, 0, len(payload.Products))
	for i := range payload.Products {
		products = append(products, payload.Products[i].Product())
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var payload productPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Products/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Product(), nil
}

// ProductUpload is the multipart body for product create/update. Image is
// optional; when nil and ImageURL is set, the backend keeps serving the
// referenced image.
type ProductUpload struct {
	Form      *models.ProductForm
	Image     io.Reader
	ImageName string
}

func (u *ProductUpload) encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"Name":          u.Form.Name,
		"Description":   u.Form.Description,
		"Price":         u.Form.Price.String(),
		"StockQuantity": strconv.Itoa(u.Form.StockQuantity),
		"CategoryId":    strconv.Itoa(u.Form.CategoryID),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	if u.Image != nil {
		name := u.ImageName
		if name == "" {
			name = "product.jpg"
		}
		part, err := writer.CreateFormFile("ImageFile", name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, u.Image); err != nil {
			return nil, "", fmt.Errorf("failed to write image part: %w", err)
		}
	} else if err := writer.WriteField("ImageUrl", u.Form.ImageURL); err != nil {
		return nil, "", fmt.Errorf("failed to write ImageUrl field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

// CreateProduct creates a product via multipart form data.
func (c *Client) CreateProduct(ctx context.Context, upload *ProductUpload) (*models.Product, error) {
	return c.sendProduct(ctx, http.MethodPost, "/Products", upload)
}

// UpdateProduct updates a product via multipart form data.
func (c *Client) UpdateProduct(ctx context.Context, id int, upload *ProductUpload) (*models.Product, error) {
	return c.sendProduct(ctx, http.MethodPut, fmt.Sprintf("/Products/%d", id), upload)
}

func (c *Client) sendProduct(ctx context.Context, method, path string, upload *ProductUpload) (*models.Product, error) {
	body, contentType, err := upload.encode()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var payload productPayload
	if err := c.send(req, &payload); err != nil {
		return nil, err
	}
	return payload.Product(), nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Products/%d", id), nil, nil)
}
