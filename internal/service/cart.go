package service

import (
	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// Pricer composes the pricing pipeline in the order the storefront applies
// it: size price, then promo per line, then voucher against the subtotal.
// Currency conversion is presentation-only and lives in Converter.
type Pricer struct {
	sizes    *SizePriceResolver
	promos   PromoEngine
	vouchers VoucherEngine
}

func NewPricer(sizes *SizePriceResolver) *Pricer {
	return &Pricer{sizes: sizes}
}

type CartItem struct {
	Product  *domain.Product
	Size     domain.Size
	Quantity int
	Promo    domain.Promo
}

type CartLine struct {
	Product    *domain.Product
	Size       domain.Size
	Quantity   int
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
	Discounted bool
}

type CartTotal struct {
	Lines        []CartLine
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
	FreeShipping bool
	Voucher      *domain.AppliedVoucher
}

// PriceCart prices every line and applies the voucher, if any, to the
// discounted subtotal. A nil voucher prices the cart without one. The
// OrderAmount on octx is ignored and replaced with the computed subtotal.
func (p *Pricer) PriceCart(items []CartItem, voucher *domain.Voucher, octx OrderContext) (CartTotal, error) {
	total := CartTotal{Lines: make([]CartLine, 0, len(items))}

	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		resolved := p.sizes.Resolve(item.Product, item.Size)
		priced := p.promos.Apply(resolved.Price, item.Promo)

		line := CartLine{
			Product:    item.Product,
			Size:       item.Size,
			Quantity:   qty,
			UnitPrice:  priced.FinalPrice,
			LineTotal:  priced.FinalPrice.Mul(decimal.NewFromInt(int64(qty))),
			Discounted: !priced.DiscountPercent.IsZero(),
		}
		total.Lines = append(total.Lines, line)
		total.Subtotal = total.Subtotal.Add(line.LineTotal)
	}

	total.Total = total.Subtotal

	if voucher != nil {
		octx.OrderAmount = total.Subtotal
		applied, err := p.vouchers.Validate(voucher, octx)
		if err != nil {
			return CartTotal{}, err
		}
		total.Voucher = applied
		total.Discount = applied.Discount
		total.FreeShipping = applied.FreeShipping
		total.Total = total.Subtotal.Sub(applied.Discount)
		if total.Total.IsNegative() {
			total.Total = decimal.Zero
		}
	}

	return total, nil
}
