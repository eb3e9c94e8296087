package documents

// RenderOptions is the per-call configuration: section toggles plus the
// branding text taken from the caller's business profile. It is never
// persisted.
type RenderOptions struct {
	IncludeHeader   bool
	IncludeFooter   bool
	BusinessName    string
	BusinessAddress string
	BusinessEmail   string
	BusinessPhone   string
	FooterText      string
}

// DefaultFooter is printed when neither a footer text nor a business name
// is configured.
const DefaultFooter = "Thank you for your business!"

// FooterLine resolves the footer content priority: explicit footer text,
// then business name, then the stock thank-you line.
func (o RenderOptions) FooterLine() string {
	if o.FooterText != "" {
		return o.FooterText
	}
	if o.BusinessName != "" {
		return o.BusinessName
	}
	return DefaultFooter
}
