// Package prompt turns a raw ingredient list into the instruction text sent
// to the language model.
package prompt

import (
	"strings"
	"text/template"
)

// Section headers the model is told to produce.
const (
	TitleHeader       = "## Título da Receita"
	IngredientsHeader = "### Ingredientes"
	StepsHeader       = "### Modo de Preparo"
)

const recipeTemplate = `
Você é um chef 5 estrelas. Sua tarefa é criar uma receita fácil e rápida.
USE APENAS os ingredientes fornecidos: "{{.Ingredients}}".

Se for absolutamente impossível criar uma receita razoável, diga exatamente o que está faltando.

Formate sua resposta obrigatoriamente usando o formato Markdown a seguir:

{{.TitleHeader}}
{{.IngredientsHeader}}
- [Item 1]
- [Item 2]
{{.StepsHeader}}
1. [Passo 1]
2. [Passo 2]
`

// text/template, not html/template: the ingredients must reach the model
// verbatim, quotes and angle brackets included.
var tmpl = template.Must(template.New("recipe").Parse(recipeTemplate))

type promptData struct {
	Ingredients       string
	TitleHeader       string
	IngredientsHeader string
	StepsHeader       string
}

// Build returns the prompt for the given ingredients. Any string is
// accepted and embedded as-is; the result depends on nothing else.
func Build(ingredients string) string {
	var sb strings.Builder
	data := promptData{
		Ingredients:       ingredients,
		TitleHeader:       TitleHeader,
		IngredientsHeader: IngredientsHeader,
		StepsHeader:       StepsHeader,
	}
	// Executing a parsed template over plain string fields into a
	// strings.Builder cannot fail.
	_ = tmpl.Execute(&sb, data)
	return sb.String()
}
