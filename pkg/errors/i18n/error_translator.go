package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
)

// Hata kodu → kullanıcı mesajı tablosu binary'ye gömülür. Şimdilik yalnızca
// İngilizce paketlenir; bilinmeyen locale istekleri İngilizceye düşer.

//go:embed *.json
var localeFiles embed.FS

const defaultLocale = "en"

var messages map[string]string

func Load(locale string) error {
	data, err := localeFiles.ReadFile(locale + ".json")
	if err != nil {
		data, err = localeFiles.ReadFile(defaultLocale + ".json")
		if err != nil {
			return fmt.Errorf("no embedded message table for %q or %q: %w", locale, defaultLocale, err)
		}
	}

	table := make(map[string]string)
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("invalid message table: %w", err)
	}
	messages = table
	return nil
}

// T returns the user-facing message for an error code. Tabloda olmayan kodlar
// olduğu gibi döner; bu eksik bir en.json girdisine işaret eder.
func T(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	log.Printf("i18n: no message for code %q", code)
	return code
}
