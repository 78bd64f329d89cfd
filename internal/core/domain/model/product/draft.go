package product

import (
	"errors"
	"strings"

	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

// MaxStock bounds the stock an operator can enter.
const MaxStock = 1_000_000

// ErrDraftIsNotConstructed is returned when a Draft was not built by NewDraft.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// ImageUpload is an image file attached to a create or update request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Draft is validated operator input for creating or replacing a product.
type Draft struct { //nolint:recvcheck //using for validation
	attrs  Attributes
	images []ImageUpload

	guard guard.ConstructorGuard
}

// NewDraft validates attrs: name and brand are required, stock must be in
// [0, MaxStock] and a discount price may not exceed the price.
func NewDraft(attrs Attributes, images []ImageUpload) (Draft, error) {
	attrs.Name = strings.TrimSpace(attrs.Name)
	attrs.Brand = strings.TrimSpace(attrs.Brand)

	var nameErr, brandErr, stockErr, discountErr error
	if attrs.Name == "" {
		nameErr = ErrNameIsRequired
	}
	if attrs.Brand == "" {
		brandErr = ErrBrandIsRequired
	}
	if attrs.Stock < 0 || attrs.Stock > MaxStock {
		stockErr = errs.NewValueIsOutOfRangeError("stock", attrs.Stock, 0, MaxStock)
	}
	moneyErr := attrs.validateMoney()
	if moneyErr == nil && attrs.DiscountPrice != nil && attrs.DiscountPrice.GreaterThan(attrs.Price) {
		discountErr = errs.NewValueIsOutOfRangeError(
			"discountPrice", attrs.DiscountPrice.String(), "0.00", attrs.Price.String())
	}

	if err := errors.Join(nameErr, brandErr, stockErr, moneyErr, discountErr); err != nil {
		return Draft{}, err
	}

	return Draft{
		attrs:  attrs,
		images: append([]ImageUpload(nil), images...),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (d Draft) Validate() error {
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

func (d Draft) Attributes() Attributes {
	return d.attrs
}

func (d Draft) Images() []ImageUpload {
	return append([]ImageUpload(nil), d.images...)
}
