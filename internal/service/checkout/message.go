package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"podshop/internal/domain"
	"podshop/internal/money"
)

// Message renders the outbound WhatsApp text for an order. The output is
// a deterministic function of the payload: the same order always yields
// byte-identical text.
func Message(storeName string, o domain.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo pedido - %s*\n\n", storeName)

	b.WriteString("*Itens:*\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %dx %s — %s\n", it.Quantity, it.Name, money.Format(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "*Região:* %s\n", o.ZoneName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", o.Address.Name)
	fmt.Fprintf(&b, "*Telefone:* %s\n", o.Address.Phone)
	fmt.Fprintf(&b, "*Endereço:* %s, %s - %s, %s\n", o.Address.Street, o.Address.Number, o.Address.District, o.Address.City)
	if o.Address.Complement != "" {
		fmt.Fprintf(&b, "*Complemento:* %s\n", o.Address.Complement)
	}
	if o.Address.Reference != "" {
		fmt.Fprintf(&b, "*Referência:* %s\n", o.Address.Reference)
	}
	b.WriteString("\n")

	if o.CouponCode != "" {
		// With a coupon, both the pre-discount subtotal and the discount
		// amount are spelled out, not just the final total.
		fmt.Fprintf(&b, "*Subtotal:* %s\n", money.Format(o.Subtotal))
		fmt.Fprintf(&b, "*Cupom (%s):* -%s\n", o.CouponCode, money.Format(o.Discount))
	}
	fmt.Fprintf(&b, "*Total:* %s", money.Format(o.Total))

	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens a chat with the
// zone's routing number, pre-filled with text.
func WhatsAppLink(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}
