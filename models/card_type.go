package models

import "github.com/shopspring/decimal"

// CardType fiziksel NFC kartın ürün seviyesini belirtir.
type CardType string

const (
	CardTypeStandard CardType = "standard"
	CardTypePremium  CardType = "premium"
	CardTypeMetal    CardType = "metal"
)

// DefaultCurrency fiyatların para birimi.
const DefaultCurrency = "TRY"

// Birim fiyatlar (TRY). Sipariş anında sabitlenir, sonradan yeniden hesaplanmaz.
var unitPrices = map[CardType]decimal.Decimal{
	CardTypeStandard: decimal.NewFromInt(150),
	CardTypePremium:  decimal.NewFromInt(250),
	CardTypeMetal:    decimal.NewFromInt(500),
}

// Valid bilinen bir kart tipi mi?
func (t CardType) Valid() bool {
	_, ok := unitPrices[t]
	return ok
}

// Normalize bilinmeyen tipleri standard'a indirger.
func (t CardType) Normalize() CardType {
	if t.Valid() {
		return t
	}
	return CardTypeStandard
}

// UnitPrice kart tipinin birim fiyatını döndürür; bilinmeyen tipler standard fiyatı alır.
func UnitPrice(t CardType) decimal.Decimal {
	return unitPrices[t.Normalize()]
}

// TotalPrice birim fiyat x adet.
func TotalPrice(t CardType, quantity int) decimal.Decimal {
	return UnitPrice(t).Mul(decimal.NewFromInt(int64(quantity)))
}
