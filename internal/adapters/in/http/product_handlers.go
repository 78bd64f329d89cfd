package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"sellerdesk/internal/core/application/usecases/commands"
	"sellerdesk/internal/core/application/usecases/queries"
	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/generated/servers"
	"sellerdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.handlers.ProductQueries.HandleList(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productID servers.ProductId) error {
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.handlers.ProductQueries.HandleGet(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProduct(p))
}

// CreateProduct handles POST /api/v1/products - multipart product form.
func (s *Server) CreateProduct(ctx echo.Context) error {
	draft, err := parseProductForm(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(draft)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.Products.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProduct(s.handlers.ProductQueries.View(created)))
}

// UpdateProduct handles PUT /api/v1/products/{productId} - multipart product form.
func (s *Server) UpdateProduct(ctx echo.Context, productID servers.ProductId) error {
	draft, err := parseProductForm(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, draft)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.Products.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProduct(s.handlers.ProductQueries.View(updated)))
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productID servers.ProductId) error {
	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.Products.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseProductForm reads the product form: stock defaults to 0 and isActive
// to true. Files are taken from the repeated "images" field.
func parseProductForm(ctx echo.Context) (product.Draft, error) {
	price, hasPrice, priceErr := parseAmount("price", ctx.FormValue("price"))
	if priceErr == nil && !hasPrice {
		priceErr = errs.NewValueIsRequiredError("price")
	}
	discount, hasDiscount, discountErr := parseAmount("discountPrice", ctx.FormValue("discountPrice"))

	stock := 0
	var stockErr error
	if raw := strings.TrimSpace(ctx.FormValue("stock")); raw != "" {
		if stock, stockErr = strconv.Atoi(raw); stockErr != nil {
			stockErr = errs.NewValueIsInvalidErrorWithCause("stock", stockErr)
		}
	}

	active := true
	var activeErr error
	if raw := strings.TrimSpace(ctx.FormValue("isActive")); raw != "" {
		if active, activeErr = strconv.ParseBool(raw); activeErr != nil {
			activeErr = errs.NewValueIsInvalidErrorWithCause("isActive", activeErr)
		}
	}

	if err := errors.Join(priceErr, discountErr, stockErr, activeErr); err != nil {
		return product.Draft{}, err
	}

	images, err := readImages(ctx)
	if err != nil {
		return product.Draft{}, err
	}

	attrs := product.Attributes{
		Name:        ctx.FormValue("name"),
		Description: strings.TrimSpace(ctx.FormValue("description")),
		Brand:       ctx.FormValue("brand"),
		Price:       price,
		Category:    product.Category{ID: strings.TrimSpace(ctx.FormValue("category"))},
		Stock:       stock,
		Active:      active,
	}
	if hasDiscount {
		attrs.DiscountPrice = &discount
	}

	return product.NewDraft(attrs, images)
}

// parseAmount reads a decimal amount in major units. Blank input is reported
// as absent.
func parseAmount(field, raw string) (kernel.Money, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.Money{}, false, nil
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return kernel.Money{}, false, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	m, err := kernel.MoneyFromFloat(amount)
	if err != nil {
		return kernel.Money{}, false, err
	}
	return m, true, nil
}

func readImages(ctx echo.Context) ([]product.ImageUpload, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("images", err)
	}

	files := form.File["images"]
	images := make([]product.ImageUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open image %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", fh.Filename, err)
		}
		images = append(images, product.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Data:        data,
		})
	}
	return images, nil
}

func toProducts(views []queries.ProductView) []servers.Product {
	response := make([]servers.Product, len(views))
	for i, v := range views {
		response[i] = toProduct(v)
	}
	return response
}

func toProduct(v queries.ProductView) servers.Product {
	p := servers.Product{
		Id:          v.ID,
		Name:        v.Name,
		Description: optional(v.Description),
		Brand:       v.Brand,
		Price:       float32(v.Price),
		CategoryId:  optional(v.CategoryID),
		Category:    v.Category,
		Images:      v.Images,
		Stock:       v.Stock,
		IsActive:    v.IsActive,
		LowStock:    v.LowStock,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if v.DiscountPrice != nil {
		discount := float32(*v.DiscountPrice)
		p.DiscountPrice = &discount
	}
	return p
}
