package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/randomtoy/manabase-go/internal/app"
	"github.com/randomtoy/manabase-go/internal/domain"
	"github.com/randomtoy/manabase-go/internal/ports"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const fieldTotalLands = "totalLands"

type formRow struct {
	Code      string
	ColorName string
	Single    string
	Double    string
}

type dialogView struct {
	Title   string
	Message string
}

type formView struct {
	Rows       []formRow
	TotalLands string
	Result     []app.LandCount
	Dialog     *dialogView
	Error      string
}

var noSymbolsDialog = &dialogView{Title: "Invalid Input", Message: "Add at least one symbol."}

func newFormView(lands [domain.NumColors]ports.LandInfo, totalLands string) formView {
	title := cases.Title(language.English)
	rows := make([]formRow, domain.NumColors)
	for i, l := range lands {
		rows[i] = formRow{
			Code:      l.Color.Code(),
			ColorName: title.String(l.ColorName),
			Single:    "0",
			Double:    "0",
		}
	}
	return formView{Rows: rows, TotalLands: totalLands}
}

// readForm fills the view with the submitted values and parses them into a
// request. The view keeps the raw values so the form can be redisplayed.
func readForm(c echo.Context, v *formView) (app.RecommendRequest, error) {
	var req app.RecommendRequest
	var firstErr error

	parse := func(field string) (string, int) {
		raw := strings.TrimSpace(c.FormValue(field))
		if raw == "" {
			return "0", 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%w: %s must be a whole number", errInvalidRequest, field)
		}
		return raw, n
	}

	for i := range v.Rows {
		code := v.Rows[i].Code
		v.Rows[i].Single, req.Symbols[i].Single = parse(code)
		v.Rows[i].Double, req.Symbols[i].Double = parse(code + code)
	}
	v.TotalLands, req.TotalLands = parse(fieldTotalLands)

	return req, firstErr
}

func renderForm(c echo.Context, status int, v formView) error {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, v); err != nil {
		return fmt.Errorf("render form: %w", err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}
