package i18n

// Translator retrieves localized summaries for diagnostic codes. data provides
// optional metadata to embed in the message (for example, "role" or "tag").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "role_conflict":
			return "フィールドロールが競合しています"
		case "invalid_variant_shape":
			return "列挙型バリアントの形が不正です"
		case "invalid_scalar":
			return "スカラー値が不正です"
		case "unexpected_type_name":
			return "予期しない型名です"
		case "invalid_role":
			return "未知のフィールドロールです"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "role_conflict":
			return "conflicting field roles"
		case "invalid_variant_shape":
			return "invalid enum variant shape"
		case "invalid_scalar":
			return "invalid scalar value"
		case "unexpected_type_name":
			return "unexpected type name"
		case "invalid_role":
			return "unknown field role"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
