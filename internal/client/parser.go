// internal/client/parser.go
package client

import "context"

// ParseIngredient runs one ingredient string through the server-side
// parser ("nlp", "brute", or "openai").
func (c *Client) ParseIngredient(ctx context.Context, ingredient, parser string) (any, error) {
	return c.Post(ctx, "/api/parser/ingredient", map[string]any{
		"ingredient": ingredient,
		"parser":     parser,
	})
}

func (c *Client) ParseIngredientsBatch(ctx context.Context, ingredients []string, parser string) (any, error) {
	return c.Post(ctx, "/api/parser/ingredients", map[string]any{
		"ingredients": ingredients,
		"parser":      parser,
	})
}
