package sentiment

var negativeExamples = [...]string{
	"The new update broke everything. Waste of money, I wish I never bought this. This product stopped working after just two days. The sound quality is horrible and distorted. I hate how slow this device has become.",
	"Terrible user interface — so confusing to use. This app is useless, nothing works as expected. The website keeps freezing on checkout. I regret downloading this app. Poor design and bad customer experience.",
	"This company doesn't care about its customers. They never deliver on their promises. Their marketing is misleading and dishonest. Very disappointed by how they handled my complaint. They keep ignoring user feedback.",
	"This brand used to be great, but now it's trash. Feels like a scam. I don't trust this brand anymore. Their service quality keeps getting worse. Totally unreliable and frustrating experience.",
	"App keeps lagging and crashing. Too many errors and bugs after the update. Login issues every single day. Performance has dropped significantly. The system is so slow, it's painful to use.",
	"The new version is full of glitches. It constantly freezes when I try to use it. Update made the app worse than before. Notifications don't work properly. The product overheats after a few minutes of use.",
	"This is absolutely terrible and awful. I'm extremely disappointed and frustrated. Everything is broken and useless. Worst purchase ever, complete waste of money. Never buying from this horrible company again.",
	"Disgusting quality and pathetic service. They are incompetent and dishonest. This garbage product is worthless trash. I'm furious and devastated by this nightmare experience. Total disaster and complete failure.",
	"Horrible, dreadful, and miserable experience from start to finish. Abysmal quality, toxic customer service, and despicable business practices. This wretched product is utterly useless and disgraceful.",
	"Atrocious performance with deplorable results. Everything crashes constantly and fails miserably. Shameful quality and appalling support. This catastrophic mess ruined everything. Absolutely dreadful and hopeless.",
}

// Examples returns the sample negative texts in display order.
// The returned slice is a copy.
func Examples() []string {
	out := make([]string, len(negativeExamples))
	copy(out, negativeExamples[:])
	return out
}

// Example returns the 1-based example n.
func Example(n int) (string, bool) {
	if n < 1 || n > len(negativeExamples) {
		return "", false
	}
	return negativeExamples[n-1], true
}
