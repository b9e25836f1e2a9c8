// Package slugify kartvizit adreslerini (slug) ad-soyad bilgisinden üretir.
package slugify

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"nfckart.link/utils"
)

// DefaultMaxAttempts benzersiz slug için yapılacak en fazla varlık kontrolü.
const DefaultMaxAttempts = 10

// SuffixLength rastgele son ekin uzunluğu.
const SuffixLength = 4

// Sadece bu Türkçe karakterler ASCII karşılığına çevrilir. Diğer alfabeler (Kiril vb.)
// temizleme adımında tamamen düşer.
var turkishReplacer = strings.NewReplacer(
	"ğ", "g",
	"ü", "u",
	"ş", "s",
	"ı", "i",
	"ö", "o",
	"ç", "c",
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^a-z0-9-]`)
	hyphensRe    = regexp.MustCompile(`-+`)
	validSlugRe  = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Base ad ve soyaddan rastgele ek içermeyen slug gövdesini üretir.
// Sonuç boş olabilir (örn. sadece Kiril harflerden oluşan isimler).
func Base(firstName, lastName string) string {
	s := strings.ToLower(strings.TrimSpace(firstName) + "-" + strings.TrimSpace(lastName))
	s = turkishReplacer.Replace(s)
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = invalidRe.ReplaceAllString(s, "")
	s = hyphensRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Join gövde ve son eki birleştirir; gövde boşsa sadece son ek döner.
func Join(base, suffix string) string {
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// IsValid slug URL-güvenli mi (küçük harf, rakam, tire)?
func IsValid(slug string) bool {
	return validSlugRe.MatchString(slug)
}

// ExistsFunc verilen slug depoda zaten var mı?
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Allocator benzersiz slug ayırır.
type Allocator struct {
	Exists      ExistsFunc
	Suffix      func() (string, error) // nil ise 4 karakterlik base-36
	MaxAttempts int                    // <= 0 ise DefaultMaxAttempts
}

// NewAllocator varsayılan ayarlarla bir Allocator döndürür.
func NewAllocator(exists ExistsFunc) *Allocator {
	return &Allocator{Exists: exists, MaxAttempts: DefaultMaxAttempts}
}

// Allocate ad-soyad için yeni bir slug üretir ve çakışma varsa yeni son ekle tekrar dener.
//
// Bilinen boşluk: tüm denemeler çakışırsa son üretilen aday ek bir benzersizlik garantisi
// olmadan döndürülür. Gerçek bir çakışmada veritabanındaki unique index yazmayı reddeder.
// Ayrıca kontrol ile yazma arasında kilit yoktur; aynı adayı seçen iki eşzamanlı istekten
// biri yine unique index'e takılır.
func (a *Allocator) Allocate(ctx context.Context, firstName, lastName string) (string, error) {
	if a.Exists == nil {
		return "", errors.New("slugify: Exists fonksiyonu tanımlı değil")
	}
	suffixFn := a.Suffix
	if suffixFn == nil {
		suffixFn = func() (string, error) { return utils.RandomBase36(SuffixLength) }
	}
	attempts := a.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	base := Base(firstName, lastName)
	var candidate string
	for i := 0; i < attempts; i++ {
		suffix, err := suffixFn()
		if err != nil {
			return "", err
		}
		candidate = Join(base, suffix)

		exists, err := a.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return candidate, nil
}
