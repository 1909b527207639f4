package checkout

import (
	"strings"
	"testing"

	"podshop/internal/domain"
)

func sampleOrder() domain.Order {
	return domain.Order{
		ID: "o1",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Pod Uva", UnitPrice: dec("25.00"), Quantity: 2},
			{ProductID: "p2", Name: "Pod Menta", UnitPrice: dec("28.00"), Quantity: 1},
		},
		Address: domain.Address{
			Name:     "Ana Souza",
			Phone:    "81999990000",
			Street:   "Rua das Flores",
			Number:   "123",
			District: "Boa Vista",
			City:     "Recife",
		},
		Subtotal:   dec("78.00"),
		CouponCode: "DESCONTO10",
		Discount:   dec("7.80"),
		Total:      dec("70.20"),
		ZoneID:     "zone-a",
		ZoneName:   "Centro",
	}
}

func TestMessageDeterministic(t *testing.T) {
	o := sampleOrder()
	first := Message("Pod Store", o)
	second := Message("Pod Store", o)
	if first != second {
		t.Fatalf("same payload must yield byte-identical text")
	}
}

func TestMessageIncludesSubtotalAndDiscount(t *testing.T) {
	msg := Message("Pod Store", sampleOrder())

	for _, want := range []string{
		"*Novo pedido - Pod Store*",
		"- 2x Pod Uva — R$ 50,00",
		"- 1x Pod Menta — R$ 28,00",
		"*Região:* Centro",
		"*Subtotal:* R$ 78,00",
		"*Cupom (DESCONTO10):* -R$ 7,80",
		"*Total:* R$ 70,20",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q\n%s", want, msg)
		}
	}
}

func TestMessageWithoutCouponOmitsSubtotal(t *testing.T) {
	o := sampleOrder()
	o.CouponCode = ""
	o.Discount = dec("0")
	o.Total = o.Subtotal

	msg := Message("Pod Store", o)
	if strings.Contains(msg, "*Subtotal:*") {
		t.Fatalf("subtotal line only appears with a coupon\n%s", msg)
	}
	if !strings.Contains(msg, "*Total:* R$ 78,00") {
		t.Fatalf("expected total line\n%s", msg)
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+55 (81) 99999-0000", "pedido: 2x Pod Uva")
	if !strings.HasPrefix(link, "https://wa.me/5581999990000?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.ContainsAny(strings.TrimPrefix(link, "https://wa.me/5581999990000?text="), " \n") {
		t.Fatalf("message must be percent-encoded: %s", link)
	}
}
