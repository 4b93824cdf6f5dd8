package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online-store-frontend/internal/models"
)

func TestClient_CreateProduct(t *testing.T) {
	t.Run("forwards the form and image as multipart", func(t *testing.T) {
		var (
			fields   = map[string]string{}
			fileName string
			fileData []byte
		)
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			for k, v := range r.MultipartForm.Value {
				fields[k] = v[0]
			}
			file, header, err := r.FormFile("ImageFile")
			require.NoError(t, err)
			defer file.Close()
			fileName = header.Filename
			fileData, _ = io.ReadAll(file)

			w.Write([]byte(`{"Id":11,"Name":"Widget"}`))
		}))

		upload := &ProductUpload{
			Form: &models.ProductForm{
				Name:          "Widget",
				Description:   "A fine widget",
				Price:         decimal.RequireFromString("9.99"),
				StockQuantity: 5,
				CategoryID:    2,
			},
			Image:     strings.NewReader("jpeg-bytes"),
			ImageName: "widget.jpg",
		}

		product, err := client.CreateProduct(context.Background(), upload)
		require.NoError(t, err)
		assert.Equal(t, 11, product.ID)

		assert.Equal(t, "Widget", fields["Name"])
		assert.Equal(t, "9.99", fields["Price"])
		assert.Equal(t, "5", fields["StockQuantity"])
		assert.Equal(t, "2", fields["CategoryId"])
		assert.Equal(t, "widget.jpg", fileName)
		assert.Equal(t, "jpeg-bytes", string(fileData))
	})

	t.Run("image-less uploads send the url field instead", func(t *testing.T) {
		var hadFile bool
		var imageURL string
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			_, _, err := r.FormFile("ImageFile")
			hadFile = err == nil
			if v := r.MultipartForm.Value["ImageUrl"]; len(v) > 0 {
				imageURL = v[0]
			}
			w.Write([]byte(`{"Id":12}`))
		}))

		upload := &ProductUpload{
			Form: &models.ProductForm{
				Name:       "Widget",
				Price:      decimal.RequireFromString("9.99"),
				CategoryID: 2,
				ImageURL:   "https://cdn.example.com/widget.jpg",
			},
		}

		_, err := client.CreateProduct(context.Background(), upload)
		require.NoError(t, err)
		assert.False(t, hadFile)
		assert.Equal(t, "https://cdn.example.com/widget.jpg", imageURL)
	})

	t.Run("the bearer token travels with multipart requests too", func(t *testing.T) {
		var got string
		client, mem, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.Write([]byte(`{"Id":13}`))
		}))
		mem.Set("token", "admin-token")

		upload := &ProductUpload{Form: &models.ProductForm{Name: "W", Price: decimal.RequireFromString("1"), CategoryID: 1}}
		_, err := client.CreateProduct(context.Background(), upload)
		require.NoError(t, err)
		assert.Equal(t, "Bearer admin-token", got)
	})
}
