// Package turkishsearch Türkçe karakterlere duyarsız LIKE filtreleri üretir.
package turkishsearch

import "strings"

// Türkçe büyük/küçük harf ve aksan farklarını tek biçime indirger.
var folder = strings.NewReplacer(
	"İ", "i", "I", "i", "ı", "i",
	"Ğ", "g", "ğ", "g",
	"Ü", "u", "ü", "u",
	"Ş", "s", "ş", "s",
	"Ö", "o", "ö", "o",
	"Ç", "c", "ç", "c",
)

// Fold metni aramaya uygun küçük harf ASCII benzeri biçime çevirir.
func Fold(s string) string {
	return strings.ToLower(folder.Replace(strings.TrimSpace(s)))
}

// sqlFold aynı dönüşümü veritabanı tarafında kolon üzerinde yapar.
// Hem PostgreSQL hem SQLite REPLACE ve LOWER destekler.
func sqlFold(column string) string {
	expr := column
	pairs := [][2]string{
		{"İ", "i"}, {"I", "i"}, {"ı", "i"},
		{"Ğ", "g"}, {"ğ", "g"},
		{"Ü", "u"}, {"ü", "u"},
		{"Ş", "s"}, {"ş", "s"},
		{"Ö", "o"}, {"ö", "o"},
		{"Ç", "c"}, {"ç", "c"},
	}
	for _, p := range pairs {
		expr = "REPLACE(" + expr + ", '" + p[0] + "', '" + p[1] + "')"
	}
	return "LOWER(" + expr + ")"
}

// SQLFilter kolon için "LIKE ?" parçası ve argümanını döndürür.
// column çağıran tarafından sabit verilmelidir; kullanıcı girdisi olamaz.
func SQLFilter(column, term string) (string, []any) {
	return sqlFold(column) + " LIKE ?", []any{"%" + escapeLike(Fold(term)) + "%"}
}

func escapeLike(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
