package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/product"
)

const (
	fetchProductsFailed = "Failed to fetch products"
	fetchProductFailed  = "Failed to fetch product"
	createProductFailed = "Failed to create product"
	updateProductFailed = "Failed to update product"
	deleteProductFailed = "Failed to delete product"
)

// ProductClient implements ports.ProductCatalog over /api/products.
type ProductClient struct {
	client *Client
}

func NewProductClient(client *Client) *ProductClient {
	return &ProductClient{client: client}
}

type productPayload struct {
	ID            string            `json:"_id"`
	AltID         string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Brand         string            `json:"brand"`
	Price         float64           `json:"price"`
	DiscountPrice *float64          `json:"discountPrice"`
	Category      json.RawMessage   `json:"category"`
	Images        []json.RawMessage `json:"images"`
	Stock         float64           `json:"stock"`
	IsActive      *bool             `json:"isActive"`
}

// List fetches GET /api/products, a bare array or {"products": [...]}.
func (c *ProductClient) List(ctx context.Context) ([]product.Product, error) {
	body, err := c.client.do(ctx, request{method: http.MethodGet, path: "/api/products", fallback: fetchProductsFailed})
	if err != nil {
		return nil, err
	}

	items, err := unwrapList(body, "products")
	if err != nil {
		return nil, decodeError(fetchProductsFailed, err)
	}

	products := make([]product.Product, 0, len(items))
	for _, raw := range items {
		p, err := decodeProduct(raw)
		if err != nil {
			return nil, decodeError(fetchProductsFailed, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Get fetches GET /api/products/{id}, bare or wrapped as {"product": {...}}.
func (c *ProductClient) Get(ctx context.Context, id string) (product.Product, error) {
	body, err := c.client.do(ctx, request{method: http.MethodGet, path: productPath(id), fallback: fetchProductFailed})
	if err != nil {
		return product.Product{}, err
	}
	return decodeProductResponse(body, fetchProductFailed)
}

// Create posts a multipart form to /api/products.
func (c *ProductClient) Create(ctx context.Context, draft product.Draft) (product.Product, error) {
	return c.send(ctx, http.MethodPost, "/api/products", draft, createProductFailed)
}

// Update puts a multipart form to /api/products/{id}.
func (c *ProductClient) Update(ctx context.Context, id string, draft product.Draft) (product.Product, error) {
	return c.send(ctx, http.MethodPut, productPath(id), draft, updateProductFailed)
}

// Delete sends DELETE /api/products/{id}.
func (c *ProductClient) Delete(ctx context.Context, id string) error {
	_, err := c.client.do(ctx, request{method: http.MethodDelete, path: productPath(id), fallback: deleteProductFailed})
	return err
}

func (c *ProductClient) send(
	ctx context.Context,
	method, path string,
	draft product.Draft,
	fallback string,
) (product.Product, error) {
	if err := draft.Validate(); err != nil {
		return product.Product{}, err
	}

	body, contentType, err := encodeProductForm(draft)
	if err != nil {
		return product.Product{}, err
	}

	resp, err := c.client.do(ctx, request{
		method:      method,
		path:        path,
		body:        body,
		contentType: contentType,
		fallback:    fallback,
	})
	if err != nil {
		return product.Product{}, err
	}
	return decodeProductResponse(resp, fallback)
}

func productPath(id string) string {
	return "/api/products/" + url.PathEscape(id)
}

// encodeProductForm writes the draft with the field names the catalog
// expects. Image files are repeated under "images".
func encodeProductForm(draft product.Draft) (*bytes.Buffer, string, error) {
	attrs := draft.Attributes()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := [][2]string{
		{"name", attrs.Name},
		{"description", attrs.Description},
		{"price", attrs.Price.String()},
	}
	if attrs.DiscountPrice != nil {
		fields = append(fields, [2]string{"discountPrice", attrs.DiscountPrice.String()})
	}
	if attrs.Category.ID != "" {
		fields = append(fields, [2]string{"category", attrs.Category.ID})
	}
	fields = append(fields,
		[2]string{"stock", strconv.Itoa(attrs.Stock)},
		[2]string{"brand", attrs.Brand},
		[2]string{"isActive", strconv.FormatBool(attrs.Active)},
	)

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", f[0], err)
		}
	}

	for _, img := range draft.Images() {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, img.Filename))
		contentType := img.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err = part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("write image %s: %w", img.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

func decodeProductResponse(body []byte, fallback string) (product.Product, error) {
	p, err := decodeProduct(unwrapObject(body, "product"))
	if err != nil {
		return product.Product{}, decodeError(fallback, err)
	}
	return p, nil
}

func decodeProduct(raw json.RawMessage) (product.Product, error) {
	var payload productPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return product.Product{}, err
	}

	id := payload.ID
	if id == "" {
		id = payload.AltID
	}

	price, err := kernel.MoneyFromFloat(payload.Price)
	if err != nil {
		return product.Product{}, fmt.Errorf("product %s price: %w", id, err)
	}

	var discount *kernel.Money
	if payload.DiscountPrice != nil {
		d, err := kernel.MoneyFromFloat(*payload.DiscountPrice)
		if err != nil {
			return product.Product{}, fmt.Errorf("product %s discount: %w", id, err)
		}
		discount = &d
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	return product.RestoreProduct(id, product.Attributes{
		Name:          payload.Name,
		Description:   payload.Description,
		Brand:         payload.Brand,
		Price:         price,
		DiscountPrice: discount,
		Category:      decodeCategory(payload.Category),
		Stock:         int(math.Round(payload.Stock)),
		Active:        active,
	}, decodeImages(payload.Images))
}

// decodeCategory accepts a bare id or a populated {"_id", "name"} object.
func decodeCategory(raw json.RawMessage) product.Category {
	if len(raw) == 0 {
		return product.Category{}
	}

	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return product.Category{ID: strings.TrimSpace(id)}
	}

	var obj struct {
		ID    string `json:"_id"`
		AltID string `json:"id"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return product.Category{}
	}
	if obj.ID == "" {
		obj.ID = obj.AltID
	}
	return product.Category{ID: obj.ID, Name: strings.TrimSpace(obj.Name)}
}

// decodeImages accepts image URLs as strings or {"url": "..."} objects.
func decodeImages(raw []json.RawMessage) []string {
	images := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				images = append(images, s)
			}
			continue
		}

		var obj struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(item, &obj); err == nil && strings.TrimSpace(obj.URL) != "" {
			images = append(images, strings.TrimSpace(obj.URL))
		}
	}
	return images
}
