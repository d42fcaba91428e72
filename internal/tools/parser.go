// internal/tools/parser.go
package tools

import (
	"context"

	"github.com/mdlopresti/mealie-mcp-sub000/internal/client"
)

// ParserIngredient parses a single ingredient string into structured
// quantity/unit/food components. Parser is "nlp", "brute", or
// "openai".
func ParserIngredient(ctx context.Context, ingredient, parser string) string {
	if parser == "" {
		parser = "nlp"
	}
	return run(func(c *client.Client) (any, error) {
		return c.ParseIngredient(ctx, ingredient, parser)
	})
}

func ParserIngredientsBatch(ctx context.Context, ingredients []string, parser string) string {
	if parser == "" {
		parser = "nlp"
	}
	return run(func(c *client.Client) (any, error) {
		response, err := c.ParseIngredientsBatch(ctx, ingredients, parser)
		if err != nil {
			return nil, err
		}

		count := 0
		if parsed, ok := response.([]any); ok {
			count = len(parsed)
		}
		return map[string]any{
			"count":              count,
			"parsed_ingredients": response,
		}, nil
	})
}
