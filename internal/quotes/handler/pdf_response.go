package handler

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"tapquote_backend/internal/quotes/domain"
)

const contentTypePDF = "application/pdf"

func servePDFBytes(c *gin.Context, customerName string, pdfBytes []byte) {
	setPDFHeaders(c, customerName)
	c.Data(http.StatusOK, contentTypePDF, pdfBytes)
}

func setPDFHeaders(c *gin.Context, customerName string) {
	c.Header("Content-Type", contentTypePDF)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdfFileName(customerName)))
}

// pdfFileName builds quote_<customer>.pdf with spaces as underscores.
// Characters that could break the header are dropped.
func pdfFileName(customerName string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(customerName) {
		switch {
		case r == ' ':
			sb.WriteRune('_')
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			sb.WriteRune(r)
		}
	}
	name := sb.String()
	if name == "" {
		name = domain.DefaultCustomerName
	}
	return "quote_" + name + ".pdf"
}
