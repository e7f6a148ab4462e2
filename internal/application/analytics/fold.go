package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone y elimina los diacríticos (NFD, quitar marcas
// combinantes, NFC). No es seguro para uso concurrente, cada llamada a
// foldName construye el suyo.
func foldTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// foldName normaliza un nombre para matching: minúsculas, sin espacios en
// los bordes y sin tildes ("José Pérez " y "jose perez" coinciden). Las
// planillas cargan los nombres a mano, con acentuación inconsistente.
func foldName(name string) string {
	folded, _, err := transform.String(foldTransformer(), name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
