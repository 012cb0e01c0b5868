package seed

// Page is a block of static marketing copy served read-only by the gateway.
type Page struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// StaticPages maps page slugs to their fixed copy.
var StaticPages = map[string]Page{
	"about": {
		Title:   "About OlalaDOT",
		Content: "OlalaDOT was born from a simple idea: to bring the most unique and amazing digital products to everyone. We are a team of passionate tech enthusiasts and digital curators dedicated to finding and offering the best subscriptions, software, graphics, and more. Our mission is to make premium digital goods accessible and affordable.",
	},
	"contact": {
		Title:   "Contact Us",
		Content: "Have a question or need support? We're here to help! Reach out to us via the form below or through our social media channels. Our team will get back to you as soon as possible.",
	},
	"faq": {
		Title:   "Frequently Asked Questions",
		Content: "How do I receive my digital product? Once your order is confirmed and payment is verified, you will receive an email within 2-4 hours containing the product details, download links, or activation keys. What payment methods do you accept? We accept bKash, Nagad, Rocket, Upay, and Cash on Delivery where applicable. What is your refund policy? Refunds for digital products are handled on a case-by-case basis.",
	},
	"privacy": {
		Title:   "Privacy Policy",
		Content: "Your privacy is important to us. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you visit our website. We are committed to protecting your personal data and ensuring transparency in how we handle it.",
	},
	"refund": {
		Title:   "Refund Policy",
		Content: "At OlalaDOT, we strive for customer satisfaction. If you are not satisfied with your purchase, please contact us within 7 days. For digital products, refunds are reviewed on a case-by-case basis and are generally issued only if the product is defective or not as described.",
	},
	"terms": {
		Title:   "Terms & Conditions",
		Content: "By accessing and using OlalaDOT, you agree to comply with and be bound by the following terms and conditions of use, which together with our privacy policy govern OlalaDOT's relationship with you in relation to this website.",
	},
}
