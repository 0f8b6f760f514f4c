package api

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/chef-assistente/internal/recipe"
)

// IngredientsField is the form field holding the ingredient list.
const IngredientsField = "ingredientes"

// User-facing copy.
const (
	PageTitle       = "🍳 Chef Assistente – Gere receitas com o que você tem!"
	PageInstruction = "Digite os ingredientes que você tem na geladeira separados por vírgula."
	InputLabel      = "Ingredientes:"
	InputHint       = "Ex: ovo, tomate, queijo, pão velho"
	SubmitLabel     = "Gerar Receita"
	BusyMessage     = "Criando sua receita mágica..."
	RequestError    = "Não foi possível processar sua solicitação. Tente novamente."
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// pageData is the view model for index.html.tmpl.
type pageData struct {
	Title           string
	Instruction     string
	InputLabel      string
	Placeholder     string
	SubmitLabel     string
	BusyMessage     string
	Ingredients     string
	ValidationError string
	Output          template.HTML
	Failed          bool
}

func newPageData(ingredients string) pageData {
	return pageData{
		Title:       PageTitle,
		Instruction: PageInstruction,
		InputLabel:  InputLabel,
		Placeholder: InputHint,
		SubmitLabel: SubmitLabel,
		BusyMessage: BusyMessage,
		Ingredients: ingredients,
	}
}

// PageHandler serves the interactive HTML page.
type PageHandler struct {
	service  RecipeSubmitter
	renderer *MarkdownRenderer
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewPageHandler creates a PageHandler and parses the embedded page template.
func NewPageHandler(service RecipeSubmitter, renderer *MarkdownRenderer, logger *slog.Logger) (*PageHandler, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if renderer == nil {
		return nil, errors.New("renderer cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &PageHandler{
		service:  service,
		renderer: renderer,
		tmpl:     tmpl,
		logger:   logger,
	}, nil
}

// ShowForm handles GET / and renders the empty form.
func (h *PageHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, newPageData(""))
}

// SubmitForm handles POST /. Empty input is answered with an inline
// validation message and the form keeps what the user typed. Otherwise the
// generated recipe, or the generation error, is rendered below the form.
func (h *PageHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.DebugContext(r.Context(), "invalid form submission", "error", err)
		data := newPageData("")
		data.ValidationError = RequestError
		h.render(w, r, http.StatusBadRequest, data)
		return
	}

	ingredients := r.PostForm.Get(IngredientsField)
	data := newPageData(ingredients)

	outcome, err := h.service.Submit(r.Context(), ingredients)
	if errors.Is(err, recipe.ErrEmptyIngredients) {
		data.ValidationError = recipe.ValidationMessage
		h.render(w, r, http.StatusUnprocessableEntity, data)
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "recipe submission failed", "error", err)
		data.ValidationError = RequestError
		h.render(w, r, http.StatusInternalServerError, data)
		return
	}

	data.Output = h.renderOutcome(r, outcome)
	data.Failed = !outcome.Succeeded()
	h.render(w, r, http.StatusOK, data)
}

// renderOutcome converts the outcome's Markdown to HTML, falling back to
// escaped preformatted text if conversion fails.
func (h *PageHandler) renderOutcome(r *http.Request, outcome recipe.Outcome) template.HTML {
	text := outcome.Display()

	out, err := h.renderer.Render(text)
	if err != nil || out == "" {
		h.logger.WarnContext(r.Context(), "falling back to plain text output", "error", err)
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>") //nolint:gosec
	}
	return out
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to execute page template", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.DebugContext(r.Context(), "failed to write page", "error", err)
	}
}
