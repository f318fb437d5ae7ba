package sealer

import (
	_ "embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

//go:embed assets/decrypt.js
var decryptScript []byte

//go:embed assets/template.html
var hostTemplateSource string

//go:embed assets/document.html
var documentTemplateSource string

var (
	hostTemplate     = template.Must(template.New("host").Parse(hostTemplateSource))
	documentTemplate = template.Must(template.New("document").Parse(documentTemplateSource))
)

const (
	mimeJS   = "text/javascript"
	mimeHTML = "text/html"
)

var (
	sharedMinifier     *minify.M
	sharedMinifierOnce sync.Once
)

func getMinifier() *minify.M {
	sharedMinifierOnce.Do(func() {
		sharedMinifier = minify.New()
		sharedMinifier.Add(mimeJS, &js.Minifier{})
		sharedMinifier.Add(mimeHTML, &html.Minifier{KeepEndTags: true, KeepDocumentTags: true})
	})

	return sharedMinifier
}

// unlockScript returns the browser unlock script, minified if requested.
func unlockScript(minified bool) ([]byte, error) {
	if !minified {
		return decryptScript, nil
	}

	out, err := getMinifier().Bytes(mimeJS, decryptScript)
	if err != nil {
		return nil, fmt.Errorf("minify unlock script: %w", err)
	}
	return out, nil
}

// minifyHTML compacts a rendered document.
func minifyHTML(doc []byte) ([]byte, error) {
	out, err := getMinifier().Bytes(mimeHTML, doc)
	if err != nil {
		return nil, fmt.Errorf("minify document: %w", err)
	}
	return out, nil
}
