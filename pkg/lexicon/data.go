package lexicon

// DefaultEntries returns the built-in phrase table. Order matters: it is
// the replacement order used by Normalize.
func DefaultEntries() []Entry {
	return []Entry{
		// Hindi
		{Phrase: "सिरदर्द", Canonical: "headache"},
		{Phrase: "बुखार", Canonical: "fever"},
		{Phrase: "खांसी", Canonical: "cough"},
		{Phrase: "जुकाम", Canonical: "cold"},
		{Phrase: "उल्टी", Canonical: "vomiting"},
		{Phrase: "दस्त", Canonical: "diarrhea"},
		{Phrase: "थकान", Canonical: "fatigue"},
		{Phrase: "चक्कर", Canonical: "dizziness"},
		{Phrase: "पेट दर्द", Canonical: "stomach ache"},
		{Phrase: "सांस की तकलीफ", Canonical: "breathing difficulty"},
		{Phrase: "सर्दी", Canonical: "cold"},
		{Phrase: "गले में खराश", Canonical: "sore throat"},
		{Phrase: "कमजोरी", Canonical: "weakness"},
		{Phrase: "जोड़ों का दर्द", Canonical: "joint pain"},
		{Phrase: "मांसपेशियों में दर्द", Canonical: "muscle pain"},
		{Phrase: "नाक बहना", Canonical: "runny nose"},
		{Phrase: "कंधे का दर्द", Canonical: "shoulder pain"},
		{Phrase: "पीठ दर्द", Canonical: "back pain"},
		{Phrase: "आंखों में जलन", Canonical: "eye irritation"},
		{Phrase: "कमर दर्द", Canonical: "lower back pain"},

		// Bengali
		{Phrase: "মাথাব্যথা", Canonical: "headache"},
		{Phrase: "জ্বর", Canonical: "fever"},
		{Phrase: "কাশি", Canonical: "cough"},
		{Phrase: "সর্দি", Canonical: "cold"},
		{Phrase: "বমি", Canonical: "vomiting"},
		{Phrase: "ডায়রিয়া", Canonical: "diarrhea"},
		{Phrase: "ক্লান্তি", Canonical: "fatigue"},
		{Phrase: "মাথা ঘোরা", Canonical: "dizziness"},
		{Phrase: "পেট ব্যথা", Canonical: "stomach ache"},
		{Phrase: "শ্বাস নিতে কষ্ট", Canonical: "breathing difficulty"},
		{Phrase: "গলা ব্যথা", Canonical: "sore throat"},
		{Phrase: "দুর্বলতা", Canonical: "weakness"},

		// Tamil
		{Phrase: "தலைவலி", Canonical: "headache"},
		{Phrase: "காய்ச்சல்", Canonical: "fever"},
		{Phrase: "இருமல்", Canonical: "cough"},
		{Phrase: "சளி", Canonical: "cold"},
		{Phrase: "வாந்தி", Canonical: "vomiting"},
		{Phrase: "வயிற்றுப்போக்கு", Canonical: "diarrhea"},
		{Phrase: "சோர்வு", Canonical: "fatigue"},
		{Phrase: "தலைசுற்றல்", Canonical: "dizziness"},
		{Phrase: "வயிற்று வலி", Canonical: "stomach ache"},
		{Phrase: "மூச்சுத் திணறல்", Canonical: "breathing difficulty"},
		{Phrase: "தொண்டை வலி", Canonical: "sore throat"},
		{Phrase: "பலவீனம்", Canonical: "weakness"},

		// Telugu
		{Phrase: "తలనొప్పి", Canonical: "headache"},
		{Phrase: "జ్వరం", Canonical: "fever"},
		{Phrase: "దగ్గు", Canonical: "cough"},
		{Phrase: "జలుబు", Canonical: "cold"},
		{Phrase: "వాంతి", Canonical: "vomiting"},
		{Phrase: "విరేచనాలు", Canonical: "diarrhea"},
		{Phrase: "అలసట", Canonical: "fatigue"},
		{Phrase: "తలతిరుగుడు", Canonical: "dizziness"},
		{Phrase: "కడుపు నొప్పి", Canonical: "stomach ache"},
		{Phrase: "శ్వాస తీసుకోవడంలో ఇబ్బంది", Canonical: "breathing difficulty"},
		{Phrase: "గొంతు నొప్పి", Canonical: "sore throat"},
		{Phrase: "బలహీనత", Canonical: "weakness"},

		// Marathi (shares सर्दी with the Hindi block above)
		{Phrase: "डोकेदुखी", Canonical: "headache"},
		{Phrase: "ताप", Canonical: "fever"},
		{Phrase: "खोकला", Canonical: "cough"},
		{Phrase: "उलटी", Canonical: "vomiting"},
		{Phrase: "अतिसार", Canonical: "diarrhea"},
		{Phrase: "थकवा", Canonical: "fatigue"},
		{Phrase: "चक्कर येणे", Canonical: "dizziness"},
		{Phrase: "पोटदुखी", Canonical: "stomach ache"},
		{Phrase: "श्वास घेण्यास त्रास", Canonical: "breathing difficulty"},
		{Phrase: "घसा दुखणे", Canonical: "sore throat"},
		{Phrase: "अशक्तपणा", Canonical: "weakness"},

		// Gujarati
		{Phrase: "માથાનો દુખાવો", Canonical: "headache"},
		{Phrase: "તાવ", Canonical: "fever"},
		{Phrase: "ખાંસી", Canonical: "cough"},
		{Phrase: "શરદી", Canonical: "cold"},
		{Phrase: "ઉલટી", Canonical: "vomiting"},
		{Phrase: "ઝાડા", Canonical: "diarrhea"},
		{Phrase: "થાક", Canonical: "fatigue"},
		{Phrase: "ચક્કર", Canonical: "dizziness"},
		{Phrase: "પેટમાં દુખાવો", Canonical: "stomach ache"},
		{Phrase: "શ્વાસ લેવામાં તકલીફ", Canonical: "breathing difficulty"},
		{Phrase: "ગળામાં દુખાવો", Canonical: "sore throat"},
		{Phrase: "નબળાઈ", Canonical: "weakness"},

		// Kannada
		{Phrase: "ತಲೆನೋವು", Canonical: "headache"},
		{Phrase: "ಜ್ವರ", Canonical: "fever"},
		{Phrase: "ಕೆಮ್ಮು", Canonical: "cough"},
		{Phrase: "ಶೀತ", Canonical: "cold"},
		{Phrase: "ವಾಂತಿ", Canonical: "vomiting"},
		{Phrase: "ಅತಿಸಾರ", Canonical: "diarrhea"},
		{Phrase: "ಆಯಾಸ", Canonical: "fatigue"},
		{Phrase: "ತಲೆ ತಿರುಗುವಿಕೆ", Canonical: "dizziness"},
		{Phrase: "ಹೊಟ್ಟೆ ನೋವು", Canonical: "stomach ache"},
		{Phrase: "ಉಸಿರಾಟದ ತೊಂದರೆ", Canonical: "breathing difficulty"},
		{Phrase: "ಗಂಟಲು ನೋವು", Canonical: "sore throat"},
		{Phrase: "ದುರ್ಬಲತೆ", Canonical: "weakness"},

		// Punjabi
		{Phrase: "ਸਿਰ ਦਰਦ", Canonical: "headache"},
		{Phrase: "ਬੁਖਾਰ", Canonical: "fever"},
		{Phrase: "ਖੰਘ", Canonical: "cough"},
		{Phrase: "ਜ਼ੁਕਾਮ", Canonical: "cold"},
		{Phrase: "ਉਲਟੀ", Canonical: "vomiting"},
		{Phrase: "ਦਸਤ", Canonical: "diarrhea"},
		{Phrase: "ਥਕਾਵਟ", Canonical: "fatigue"},
		{Phrase: "ਚੱਕਰ", Canonical: "dizziness"},
		{Phrase: "ਪੇਟ ਦਰਦ", Canonical: "stomach ache"},
		{Phrase: "ਸਾਹ ਲੈਣ ਵਿੱਚ ਤਕਲੀਫ", Canonical: "breathing difficulty"},
		{Phrase: "ਗਲੇ ਦੀ ਖਰਾਬੀ", Canonical: "sore throat"},
		{Phrase: "ਕਮਜ਼ੋਰੀ", Canonical: "weakness"},
	}
}
