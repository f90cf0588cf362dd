package pdf

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"currency": formatCurrency,
	"describe": ItemDescription,
}).ParseFS(templateFS, "templates/*.html"))

// htmlView is the data the quote templates are executed against.
type htmlView struct {
	Document
	EstimateFootnote string
	Terms            []string
	Footer           string
}

// GotenbergRenderer renders the quote as HTML and converts it with Gotenberg.
type GotenbergRenderer struct {
	client *GotenbergClient
	opts   ConvertOpts
}

var _ Renderer = (*GotenbergRenderer)(nil)

// NewGotenbergRenderer creates a renderer backed by client.
func NewGotenbergRenderer(client *GotenbergClient) *GotenbergRenderer {
	return &GotenbergRenderer{client: client, opts: DefaultQuoteOpts()}
}

func (r *GotenbergRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	index, footer, err := RenderHTML(doc)
	if err != nil {
		return nil, err
	}
	opts := r.opts
	opts.FooterHTML = footer
	return r.client.ConvertHTML(ctx, index, opts)
}

// RenderHTML executes the page and footer templates for doc.
func RenderHTML(doc Document) (index, footer []byte, err error) {
	b := doc.Business
	view := htmlView{
		Document:         doc,
		EstimateFootnote: estimateFootnote,
		Terms:            terms,
		Footer:           joinParts([]string{b.Name, doc.QuoteNumber, b.DisplayPhone(), b.Email}, " · "),
	}

	if index, err = execute("quote.html", view); err != nil {
		return nil, nil, err
	}
	if footer, err = execute("footer.html", view); err != nil {
		return nil, nil, err
	}
	return index, footer, nil
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
