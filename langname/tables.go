package langname

// englishNames 语言代码 → 英文名称.
var englishNames = map[string]string{
	"af": "Afrikaans",
	"am": "Amharic",
	"ar": "Arabic",
	"az": "Azerbaijani",
	"be": "Belarusian",
	"bg": "Bulgarian",
	"bn": "Bengali",
	"bs": "Bosnian",
	"ca": "Catalan",
	"cs": "Czech",
	"cy": "Welsh",
	"da": "Danish",
	"de": "German",
	"dv": "Divehi",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"et": "Estonian",
	"eu": "Basque",
	"fa": "Persian",
	"fi": "Finnish",
	"fr": "French",
	"ga": "Irish",
	"gl": "Galician",
	"gu": "Gujarati",
	"he": "Hebrew",
	"hi": "Hindi",
	"hr": "Croatian",
	"hu": "Hungarian",
	"hy": "Armenian",
	"id": "Indonesian",
	"is": "Icelandic",
	"it": "Italian",
	"ja": "Japanese",
	"ka": "Georgian",
	"kk": "Kazakh",
	"km": "Khmer",
	"kn": "Kannada",
	"ko": "Korean",
	"ks": "Kashmiri",
	"lo": "Lao",
	"lt": "Lithuanian",
	"lv": "Latvian",
	"mk": "Macedonian",
	"ml": "Malayalam",
	"mn": "Mongolian",
	"mr": "Marathi",
	"ms": "Malay",
	"mt": "Maltese",
	"my": "Burmese",
	"nb": "Norwegian Bokmål",
	"ne": "Nepali",
	"nl": "Dutch",
	"nn": "Norwegian Nynorsk",
	"no": "Norwegian",
	"pa": "Punjabi",
	"pl": "Polish",
	"ps": "Pashto",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sd": "Sindhi",
	"si": "Sinhala",
	"sk": "Slovak",
	"sl": "Slovenian",
	"sq": "Albanian",
	"sr": "Serbian",
	"sv": "Swedish",
	"sw": "Swahili",
	"ta": "Tamil",
	"te": "Telugu",
	"th": "Thai",
	"tr": "Turkish",
	"ug": "Uyghur",
	"uk": "Ukrainian",
	"ur": "Urdu",
	"uz": "Uzbek",
	"vi": "Vietnamese",
	"yi": "Yiddish",
	"zh": "Chinese",
}

// nativeNames 语言代码 → 本语言名称.
var nativeNames = map[string]string{
	"af": "Afrikaans",
	"am": "አማርኛ",
	"ar": "العربية",
	"az": "Azərbaycanca",
	"be": "Беларуская",
	"bg": "Български",
	"bn": "বাংলা",
	"bs": "Bosanski",
	"ca": "Català",
	"cs": "Čeština",
	"cy": "Cymraeg",
	"da": "Dansk",
	"de": "Deutsch",
	"dv": "ދިވެހި",
	"el": "Ελληνικά",
	"en": "English",
	"es": "Español",
	"et": "Eesti",
	"eu": "Euskara",
	"fa": "فارسی",
	"fi": "Suomi",
	"fr": "Français",
	"ga": "Gaeilge",
	"gl": "Galego",
	"gu": "ગુજરાતી",
	"he": "עברית",
	"hi": "हिन्दी",
	"hr": "Hrvatski",
	"hu": "Magyar",
	"hy": "Հայերեն",
	"id": "Bahasa Indonesia",
	"is": "Íslenska",
	"it": "Italiano",
	"ja": "日本語",
	"ka": "ქართული",
	"kk": "Қазақ тілі",
	"km": "ខ្មែរ",
	"kn": "ಕನ್ನಡ",
	"ko": "한국어",
	"ks": "كٲشُر",
	"lo": "ລາວ",
	"lt": "Lietuvių",
	"lv": "Latviešu",
	"mk": "Македонски",
	"ml": "മലയാളം",
	"mn": "Монгол",
	"mr": "मराठी",
	"ms": "Bahasa Melayu",
	"mt": "Malti",
	"my": "မြန်မာ",
	"nb": "Norsk bokmål",
	"ne": "नेपाली",
	"nl": "Nederlands",
	"nn": "Norsk nynorsk",
	"no": "Norsk",
	"pa": "ਪੰਜਾਬੀ",
	"pl": "Polski",
	"ps": "پښتو",
	"pt": "Português",
	"ro": "Română",
	"ru": "Русский",
	"sd": "سنڌي",
	"si": "සිංහල",
	"sk": "Slovenčina",
	"sl": "Slovenščina",
	"sq": "Shqip",
	"sr": "Српски",
	"sv": "Svenska",
	"sw": "Kiswahili",
	"ta": "தமிழ்",
	"te": "తెలుగు",
	"th": "ไทย",
	"tr": "Türkçe",
	"ug": "ئۇيغۇرچە",
	"uk": "Українська",
	"ur": "اردو",
	"uz": "Oʻzbekcha",
	"vi": "Tiếng Việt",
	"yi": "ייִדיש",
	"zh": "中文",
}
