package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductKind string

const (
	ProductKindPhysical ProductKind = "PHYSICAL"
	ProductKindDigital  ProductKind = "DIGITAL"
)

type ProductError error

var ErrNegativePrice ProductError = errors.New("product price cannot be negative")

// Product is a closed two-variant family (physical, digital) modelled as a
// tagged value. Variant attributes live on the same struct; Kind tells which
// ones are meaningful. New variants require a new constructor and kind, there
// is no open subclassing.
//
// Each product gets a uuid identity at construction. Cart merging keys on
// that identity, so two products built from the same attributes are still
// distinct cart lines.
type Product struct {
	id          uuid.UUID
	kind        ProductKind
	name        string
	description string
	price       decimal.Decimal

	// physical only
	weight       int
	shippingCost decimal.Decimal

	// digital only
	downloadURL string
}

func NewPhysicalProduct(name, description string, price decimal.Decimal, weight int, shippingCost decimal.Decimal) (*Product, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativePrice, price)
	}
	return &Product{
		id:           uuid.New(),
		kind:         ProductKindPhysical,
		name:         name,
		description:  description,
		price:        price,
		weight:       weight,
		shippingCost: shippingCost,
	}, nil
}

func NewDigitalProduct(name, description string, price decimal.Decimal, downloadURL string) (*Product, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativePrice, price)
	}
	return &Product{
		id:          uuid.New(),
		kind:        ProductKindDigital,
		name:        name,
		description: description,
		price:       price,
		downloadURL: downloadURL,
	}, nil
}

func (p *Product) ID() uuid.UUID {
	return p.id
}

func (p *Product) Kind() ProductKind {
	return p.kind
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Weight is meaningful for physical products only.
func (p *Product) Weight() int {
	return p.weight
}

// ShippingCost is informational. It never enters cart or order totals.
func (p *Product) ShippingCost() decimal.Decimal {
	return p.shippingCost
}

// DownloadURL is meaningful for digital products only.
func (p *Product) DownloadURL() string {
	return p.downloadURL
}
