// internal/server/parser.go
package server

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/tools"
)

type parserIngredientParams struct {
	Ingredient string `json:"ingredient" description:"Ingredient text to parse, e.g. '2 cups flour'"`
	Parser     string `json:"parser,omitempty" description:"Parser to use, nlp or brute (default nlp)"`
}

type parserBatchParams struct {
	Ingredients []string `json:"ingredients" description:"Ingredient texts to parse"`
	Parser      string   `json:"parser,omitempty" description:"Parser to use, nlp or brute (default nlp)"`
}

func parserToolHandlers() map[string]toolHandler {
	return map[string]toolHandler{
		"mealie_parser_ingredient": tool(func(ctx context.Context, p parserIngredientParams) string {
			return tools.ParserIngredient(ctx, p.Ingredient, p.Parser)
		}),
		"mealie_parser_ingredients_batch": tool(func(ctx context.Context, p parserBatchParams) string {
			return tools.ParserIngredientsBatch(ctx, p.Ingredients, p.Parser)
		}),
	}
}
